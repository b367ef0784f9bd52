package config

// LibVersion is the client protocol version stamped into every request and
// exported certificate.
const LibVersion = "1.0.13"

// DefaultChain is the chain identifier used when none is configured.
const DefaultChain = "0x8a20baa40c45dc5055aeb26197c203e576ef389d9acb171bd62da11dc5ad72b2"

// DefaultNAG is the fallback gateway base URL used before discovery.
const DefaultNAG = "https://nag.circularlabs.io/NAG.php?cep="

// DefaultNetworkURL is the network discovery base URL. The network
// identifier is appended directly.
const DefaultNetworkURL = "https://circularlabs.io/network/getNAG?network="

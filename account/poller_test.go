package account

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"circular-enterprise/apierr"
)

func TestGetTransactionOutcomeSettles(t *testing.T) {
	var calls int32

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			respond(w, `{"Result":200,"Response":{"Status":"Pending"}}`)
			return
		}
		respond(w, `{"Result":200,"Response":{"Status":"Executed","BlockID":"4"}}`)
	}))
	defer ts.Close()

	a := newTestAccount(t, ts.URL+"/")

	outcome, err := a.GetTransactionOutcome("sometx", 5*time.Second, 20*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	if outcome["Status"] != "Executed" {
		t.Fatalf("Status error, get=%v", outcome["Status"])
	}
	if outcome["BlockID"] != "4" {
		t.Fatalf("outcome object truncated: %v", outcome)
	}
	if atomic.LoadInt32(&calls) != 3 {
		t.Fatalf("poll count error, get=%d, want 3", calls)
	}
}

func TestGetTransactionOutcomeTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, `{"Result":200,"Response":{"Status":"Pending"}}`)
	}))
	defer ts.Close()

	a := newTestAccount(t, ts.URL+"/")

	outcome, err := a.GetTransactionOutcome("sometx", 120*time.Millisecond, 30*time.Millisecond)
	if err == nil {
		t.Fatal("want a timeout error")
	}
	if !apierr.IsKind(err, apierr.Timeout) {
		t.Fatalf("kind error, get=%v, want timeout", err)
	}
	if outcome != nil {
		t.Fatalf("timed out poll returned a result: %v", outcome)
	}
	if a.LastError() == nil {
		t.Fatal("timeout not recorded as last error")
	}
}

func TestGetTransactionOutcomeSurvivesFlakyTicks(t *testing.T) {
	var calls int32

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&calls, 1) {
		case 1:
			http.Error(w, "boom", http.StatusInternalServerError)
		case 2:
			respond(w, `{"Result":`) // truncated body
		default:
			respond(w, `{"Result":200,"Response":{"Status":"Executed"}}`)
		}
	}))
	defer ts.Close()

	a := newTestAccount(t, ts.URL+"/")

	outcome, err := a.GetTransactionOutcome("sometx", 5*time.Second, 20*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	if outcome["Status"] != "Executed" {
		t.Fatalf("Status error, get=%v", outcome["Status"])
	}
}

func TestGetTransactionOutcomeAccountInterval(t *testing.T) {
	var calls int32

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		respond(w, `{"Result":200,"Response":{"Status":"Pending"}}`)
	}))
	defer ts.Close()

	a := newTestAccount(t, ts.URL+"/")
	a.SetInterval(1)

	// With the 1s account interval the loop fits a second tick in before
	// the deadline; the 2s configured default would not.
	_, err := a.GetTransactionOutcome("sometx", 1500*time.Millisecond, 0)
	if !apierr.IsKind(err, apierr.Timeout) {
		t.Fatalf("kind error, get=%v, want timeout", err)
	}
	if atomic.LoadInt32(&calls) < 2 {
		t.Fatalf("poll count error, get=%d, want at least 2", calls)
	}
}

func TestGetTransactionOutcomeNetworkNotSet(t *testing.T) {
	a := New()
	a.NAGURL = ""

	_, err := a.GetTransactionOutcome("sometx", time.Second, 10*time.Millisecond)
	if !apierr.IsKind(err, apierr.State) {
		t.Fatalf("kind error, get=%v, want state", err)
	}
}

func TestGetTransactionOutcomeFirstTickImmediate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, `{"Result":200,"Response":{"Status":"Executed"}}`)
	}))
	defer ts.Close()

	a := newTestAccount(t, ts.URL+"/")

	started := time.Now()
	if _, err := a.GetTransactionOutcome("sometx", 5*time.Second, 2*time.Second); err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(started); elapsed > time.Second {
		t.Fatalf("first tick waited for the interval: %v", elapsed)
	}
}

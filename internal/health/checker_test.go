package health

import (
	"context"
	"testing"
	"time"
)

// fakeTarget is a test double for Target.
type fakeTarget struct {
	outstanding   int
	connections   int
	refreshing    bool
	didRefresh    bool
	lastRefreshAt time.Time
}

func (f *fakeTarget) OutstandingExchanges() int { return f.outstanding }
func (f *fakeTarget) ConnectionCount() int       { return f.connections }
func (f *fakeTarget) RefreshInProgress() bool    { return f.refreshing }
func (f *fakeTarget) DidRefresh() bool           { return f.didRefresh }
func (f *fakeTarget) LastRefreshAt() time.Time   { return f.lastRefreshAt }

func TestStatusConstants(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
	}{
		{StatusOK, "ok"},
		{StatusWarning, "warning"},
		{StatusCritical, "critical"},
		{StatusUnknown, "unknown"},
	}

	for _, tt := range tests {
		if string(tt.status) != tt.expected {
			t.Errorf("Status %v = %q, want %q", tt.status, string(tt.status), tt.expected)
		}
	}
}

func TestBootstrapCheck_NeverRefreshed(t *testing.T) {
	check := &BootstrapCheck{}
	result := check.Run(context.Background(), &fakeTarget{})

	if result.Status != StatusCritical {
		t.Errorf("Status = %q, want %q", result.Status, StatusCritical)
	}
}

func TestBootstrapCheck_InProgress(t *testing.T) {
	check := &BootstrapCheck{}
	result := check.Run(context.Background(), &fakeTarget{refreshing: true})

	if result.Status != StatusWarning {
		t.Errorf("Status = %q, want %q", result.Status, StatusWarning)
	}
}

func TestBootstrapCheck_Done(t *testing.T) {
	check := &BootstrapCheck{}
	result := check.Run(context.Background(), &fakeTarget{didRefresh: true, lastRefreshAt: time.Now()})

	if result.Status != StatusOK {
		t.Errorf("Status = %q, want %q", result.Status, StatusOK)
	}
}

func TestBacklogCheck(t *testing.T) {
	check := &BacklogCheck{MaxOutstanding: 4}

	ok := check.Run(context.Background(), &fakeTarget{outstanding: 1})
	if ok.Status != StatusOK {
		t.Errorf("Status = %q, want %q", ok.Status, StatusOK)
	}

	warn := check.Run(context.Background(), &fakeTarget{outstanding: 10})
	if warn.Status != StatusWarning {
		t.Errorf("Status = %q, want %q", warn.Status, StatusWarning)
	}
}

func TestConnectionsCheck_AlwaysOK(t *testing.T) {
	check := &ConnectionsCheck{}
	result := check.Run(context.Background(), &fakeTarget{connections: 0})

	if result.Status != StatusOK {
		t.Errorf("Status = %q, want %q", result.Status, StatusOK)
	}
}

func TestChecker_Run_Overall(t *testing.T) {
	checker := NewChecker()
	report := checker.Run(context.Background(), &fakeTarget{})

	if report.Overall != StatusCritical {
		t.Errorf("Overall = %q, want %q (bootstrap never ran)", report.Overall, StatusCritical)
	}
	if len(report.Results) != 3 {
		t.Errorf("Results count = %d, want 3", len(report.Results))
	}
}

func TestChecker_Run_AllHealthy(t *testing.T) {
	checker := NewChecker()
	report := checker.Run(context.Background(), &fakeTarget{didRefresh: true, lastRefreshAt: time.Now()})

	if report.Overall != StatusOK {
		t.Errorf("Overall = %q, want %q", report.Overall, StatusOK)
	}
}

func TestChecker_RunCheck_NotFound(t *testing.T) {
	checker := NewChecker()
	_, err := checker.RunCheck(context.Background(), &fakeTarget{}, "nonexistent")
	if err == nil {
		t.Error("expected error for unknown check name")
	}
}

func TestChecker_RunCheck_Found(t *testing.T) {
	checker := NewChecker()
	result, err := checker.RunCheck(context.Background(), &fakeTarget{didRefresh: true}, "bootstrap")
	if err != nil {
		t.Fatalf("RunCheck failed: %v", err)
	}
	if result.Check != "bootstrap" {
		t.Errorf("Check = %q, want %q", result.Check, "bootstrap")
	}
}

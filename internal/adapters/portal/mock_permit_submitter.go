package portal

import (
	"context"
	"fmt"
	"sync"

	"osow-feasibility-service/internal/domain"
	"osow-feasibility-service/internal/ports"
)

// Stand-in for jurisdiction permit portals. Real portals are fax machines and
// state websites; this adapter fakes their acknowledgements so the submission
// flow can run end to end.
type MockPermitSubmitter struct {
	mu      sync.Mutex
	counter int
}

func NewMockPermitSubmitter() *MockPermitSubmitter {
	return &MockPermitSubmitter{}
}

func (p *MockPermitSubmitter) Submit(ctx context.Context, req ports.PermitRequest) (ports.SubmissionOutcome, error) {
	if req.Region == "" {
		return ports.SubmissionOutcome{}, fmt.Errorf("submit permit: region must not be empty")
	}
	if req.PermitType == domain.PermitNone || req.PermitType == domain.PermitUnknown {
		return ports.SubmissionOutcome{}, fmt.Errorf("submit permit: nothing to submit for %s permit in %s", req.PermitType, req.Region)
	}

	p.mu.Lock()
	p.counter++
	n := p.counter
	p.mu.Unlock()

	hours := 4
	if req.PermitType == domain.PermitSuperload {
		hours = 12
	}

	return ports.SubmissionOutcome{
		ConfirmationID: fmt.Sprintf("%s-%06d", req.Region, n),
		Status:         "RECEIVED",
		EstimatedHours: hours,
	}, nil
}

package source

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/cespare/xxhash/v2"

	activityModel "github.com/Mouadistaa/project-pulse-ai/internal/activity/model"
	workspaceModel "github.com/Mouadistaa/project-pulse-ai/internal/workspace/model"
)

// MockHistoryDays is how many days back the demo generator covers.
const MockHistoryDays = 30

var (
	mockLists     = []string{"To Do", "In Progress", "In Review", "Done"}
	mockAgingList = []string{"Done", "In Review", "In Progress"}
	mockTypes     = []string{"Feature", "Task"}
)

// MockSource generates demo activity. Output is a pure function of the
// integration id and the calendar day, so repeated fetches on the same day
// produce identical records.
type MockSource struct {
	now func() time.Time
}

// NewMockSource creates a demo data generator.
func NewMockSource() *MockSource {
	return &MockSource{now: time.Now}
}

// NewMockSourceWithClock creates a demo data generator with a fixed notion of today.
func NewMockSourceWithClock(now func() time.Time) *MockSource {
	return &MockSource{now: now}
}

// MockRegistry serves every integration type from one generator.
func MockRegistry(src *MockSource) Registry {
	return Registry{
		workspaceModel.IntegrationTypeGitHub: src,
		workspaceModel.IntegrationTypeTrello: src,
	}
}

// Fetch returns pull requests for GitHub integrations and cards for Trello ones.
func (m *MockSource) Fetch(ctx context.Context, integration workspaceModel.Integration) (*Batch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	today := activityModel.DayOf(m.now())
	switch integration.Type {
	case workspaceModel.IntegrationTypeGitHub:
		return &Batch{
			Repo: &RepoRef{
				ExternalID: "mock-repo-1",
				Name:       "demo-repo",
				URL:        "https://github.com/demo/repo",
			},
			PullRequests: mockPullRequests(today, integration.ID),
		}, nil
	case workspaceModel.IntegrationTypeTrello:
		return &Batch{WorkItems: mockWorkItems(today, integration.ID)}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoSource, integration.Type)
	}
}

// seeded returns a generator owned by one (key, integration) pair.
func seeded(key, integrationID string) *rand.Rand {
	seed := xxhash.Sum64String(key + "-" + integrationID)
	//nolint:gosec // demo data, no security requirement
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// between returns a uniform integer in [lo, hi].
func between(r *rand.Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

func mockPullRequests(today time.Time, integrationID string) []activityModel.PullRequest {
	var prs []activityModel.PullRequest
	for i := 0; i < MockHistoryDays; i++ {
		day := today.AddDate(0, 0, -i)
		label := day.Format("2006-01-02")
		r := seeded(label, integrationID)

		count := between(r, 1, 10)
		for j := 0; j < count; j++ {
			created := day.Add(time.Duration(between(r, 9, 17)) * time.Hour)
			closed := created.Add(time.Duration(between(r, 1, 48)) * time.Hour)
			prs = append(prs, activityModel.PullRequest{
				ExternalID: fmt.Sprintf("pr-%s-%d", label, j),
				Title:      fmt.Sprintf("Demo change %s #%d", label, j),
				OpenedAt:   activityModel.At(created),
				ClosedAt:   activityModel.At(closed),
				MergedAt:   activityModel.At(closed),
				Additions:  between(r, 10, 500),
				Deletions:  between(r, 5, 200),
				Comments:   between(r, 0, 10),
			})
		}
	}
	return prs
}

func mockWorkItems(today time.Time, integrationID string) []activityModel.WorkItem {
	var items []activityModel.WorkItem
	for i := 0; i < MockHistoryDays; i++ {
		day := today.AddDate(0, 0, -i)
		label := day.Format("2006-01-02")
		r := seeded("trello-"+label, integrationID)

		count := between(r, 1, 5)
		for j := 0; j < count; j++ {
			created := day.Add(time.Duration(between(r, 9, 17)) * time.Hour)

			var list string
			switch {
			case i > 20:
				list = "Done"
			case i > 10:
				list = mockAgingList[r.IntN(len(mockAgingList))]
			default:
				list = mockLists[r.IntN(len(mockLists))]
			}

			var resolved activityModel.Timestamp
			if list == "Done" {
				resolved = activityModel.At(created.AddDate(0, 0, between(r, 1, 7)))
			}

			itemType := "Bug"
			if r.Float64() >= 0.3 {
				itemType = mockTypes[r.IntN(len(mockTypes))]
			}

			items = append(items, activityModel.WorkItem{
				ExternalID: fmt.Sprintf("card-%s-%d", label, j),
				Name:       fmt.Sprintf("%s-%d-%d: Demo work item", itemType, i, j),
				ListName:   list,
				Status:     list,
				ResolvedAt: resolved,
				ItemType:   itemType,
			})
		}
	}
	return items
}

package client

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
)

type MockRemote struct {
	mock.Mock
}

func (m *MockRemote) List(ctx context.Context, page, limit int) (*ListResult, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ListResult), args.Error(1)
}

func (m *MockRemote) Get(ctx context.Context, id int64) (*ErrorRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ErrorRecord), args.Error(1)
}

func (m *MockRemote) Create(ctx context.Context, draft Draft) (int64, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRemote) Update(ctx context.Context, id int64, draft Draft) error {
	args := m.Called(ctx, id, draft)
	return args.Error(0)
}

func (m *MockRemote) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// gatedRemote отдает ответы List только по сигналу, чтобы управлять порядком
type gatedRemote struct {
	MockRemote

	mu    sync.Mutex
	gates map[int]chan struct{}
	pages map[int]*ListResult
	errs  map[int]error
}

func newGatedRemote() *gatedRemote {
	return &gatedRemote{
		gates: make(map[int]chan struct{}),
		pages: make(map[int]*ListResult),
		errs:  make(map[int]error),
	}
}

func (g *gatedRemote) add(page int, res *ListResult) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gates[page] = make(chan struct{})
	g.pages[page] = res
}

func (g *gatedRemote) addError(page int, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gates[page] = make(chan struct{})
	g.errs[page] = err
}

func (g *gatedRemote) release(page int) {
	g.mu.Lock()
	ch := g.gates[page]
	g.mu.Unlock()
	close(ch)
}

func (g *gatedRemote) List(_ context.Context, page, _ int) (*ListResult, error) {
	g.mu.Lock()
	ch, res, err := g.gates[page], g.pages[page], g.errs[page]
	g.mu.Unlock()

	<-ch
	if err != nil {
		return nil, err
	}
	return res, nil
}

func id(v int64) *int64 { return &v }

func count(v int64) *int64 { return &v }

func records(from, n int) []ErrorRecord {
	out := make([]ErrorRecord, n)
	for i := range out {
		out[i] = ErrorRecord{
			ID:                   id(int64(from + i)),
			Description:          "Sync failure",
			Category:             "Integration",
			CustomerOverviewType: "Retail",
			Date:                 "2024-03-15",
			Count:                count(1),
		}
	}
	return out
}

func confirmWith(answer bool, err error) Confirmer {
	return ConfirmFunc(func(context.Context, string) (bool, error) {
		return answer, err
	})
}

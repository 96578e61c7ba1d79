package community

import (
	"context"
	"time"

	"github.com/breakloop/community-backend/pkg/errors"
	"github.com/breakloop/community-backend/pkg/logger"
	"github.com/breakloop/community-backend/pkg/metrics"
)

// Service exposes the join-flow operations over the snapshot store.
// Operations that reference a request or activity that no longer exists
// are silent no-ops: the returned snapshot simply does not change.
type Service interface {
	State(ctx context.Context) Snapshot
	CreateJoinRequest(ctx context.Context, activity Activity, requester Requester, opts CreateOptions) (Snapshot, error)
	AcceptJoinRequest(ctx context.Context, requestID string) (Snapshot, error)
	DeclineJoinRequest(ctx context.Context, requestID string) (Snapshot, error)
	CancelJoinRequest(ctx context.Context, activity Activity, requesterID string) (Snapshot, error)
	SetCurrentActivity(ctx context.Context, current *Activity) (Snapshot, error)
	Persist(ctx context.Context, patch Patch) (Snapshot, error)
}

type service struct {
	store   *Store
	logg    *logger.Logger
	metrics *metrics.TransitionMetrics
}

// Params carries the service dependencies.
type Params struct {
	Store   *Store
	Logger  *logger.Logger
	Metrics *metrics.TransitionMetrics
}

func NewService(params Params) (Service, error) {
	if params.Store == nil {
		return nil, errors.New(errors.CodeDependency, "community service requires a store")
	}
	if params.Logger == nil {
		return nil, errors.New(errors.CodeDependency, "community service requires a logger")
	}
	return &service{
		store:   params.Store,
		logg:    params.Logger,
		metrics: params.Metrics,
	}, nil
}

func (s *service) State(_ context.Context) Snapshot {
	return s.store.Current()
}

func (s *service) CreateJoinRequest(ctx context.Context, activity Activity, requester Requester, opts CreateOptions) (Snapshot, error) {
	ctx = s.logg.WithActivityID(ctx, targetID(activity))
	return s.apply(ctx, "create_join_request", func(prev Snapshot) Snapshot {
		return CreateJoinRequest(prev, activity, requester, opts)
	})
}

func (s *service) AcceptJoinRequest(ctx context.Context, requestID string) (Snapshot, error) {
	ctx = s.logg.WithJoinRequestID(ctx, requestID)
	request, ok := s.findRequest(requestID)
	if !ok {
		s.logg.Warn(ctx, "accept for unknown join request ignored")
		return s.store.Current(), nil
	}
	return s.apply(ctx, "accept_join_request", func(prev Snapshot) Snapshot {
		return AcceptJoinRequest(prev, request)
	})
}

func (s *service) DeclineJoinRequest(ctx context.Context, requestID string) (Snapshot, error) {
	ctx = s.logg.WithJoinRequestID(ctx, requestID)
	request, ok := s.findRequest(requestID)
	if !ok {
		s.logg.Warn(ctx, "decline for unknown join request ignored")
		return s.store.Current(), nil
	}
	return s.apply(ctx, "decline_join_request", func(prev Snapshot) Snapshot {
		return DeclineJoinRequest(prev, request)
	})
}

func (s *service) CancelJoinRequest(ctx context.Context, activity Activity, requesterID string) (Snapshot, error) {
	ctx = s.logg.WithActivityID(ctx, targetID(activity))
	return s.apply(ctx, "cancel_join_request", func(prev Snapshot) Snapshot {
		return CancelJoinRequest(prev, activity, requesterID)
	})
}

func (s *service) SetCurrentActivity(ctx context.Context, current *Activity) (Snapshot, error) {
	return s.apply(ctx, "set_current_activity", func(prev Snapshot) Snapshot {
		return SetCurrentActivity(prev, current)
	})
}

func (s *service) Persist(ctx context.Context, patch Patch) (Snapshot, error) {
	start := time.Now()
	merged, err := s.store.Persist(ctx, patch)
	s.metrics.ObserveDuration("persist", time.Since(start))
	if err != nil {
		s.metrics.IncFailure("persist")
		s.logg.Error(ctx, "failed to persist snapshot patch", err)
		return Snapshot{}, err
	}
	s.metrics.IncApplied("persist")
	return merged, nil
}

// apply runs a pure transition against the cached snapshot and persists
// the full result.
func (s *service) apply(ctx context.Context, name string, fn func(Snapshot) Snapshot) (Snapshot, error) {
	start := time.Now()
	next := fn(s.store.Current())
	merged, err := s.store.Persist(ctx, PatchFrom(next))
	s.metrics.ObserveDuration(name, time.Since(start))
	if err != nil {
		s.metrics.IncFailure(name)
		s.logg.Error(ctx, "failed to persist transition result", err)
		return Snapshot{}, err
	}
	s.metrics.IncApplied(name)
	s.logg.Info(ctx, "applied "+name)
	return merged, nil
}

func (s *service) findRequest(requestID string) (JoinRequest, bool) {
	if requestID == "" {
		return JoinRequest{}, false
	}
	for _, request := range s.store.Current().IncomingRequests {
		if request.ID == requestID {
			return request, true
		}
	}
	return JoinRequest{}, false
}

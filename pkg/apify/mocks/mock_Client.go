// Package mocks provides test doubles for the apify client.
package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	apify "github.com/sells-group/leadgen-cli/pkg/apify"
)

// MockClient is a mock type for the Client interface.
type MockClient struct {
	mock.Mock
}

// StartRun provides a mock function with given fields: ctx, actorID, input
func (_m *MockClient) StartRun(ctx context.Context, actorID string, input apify.RunInput) (*apify.Run, error) {
	ret := _m.Called(ctx, actorID, input)

	if len(ret) == 0 {
		panic("no return value specified for StartRun")
	}

	var r0 *apify.Run
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, apify.RunInput) (*apify.Run, error)); ok {
		return rf(ctx, actorID, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, apify.RunInput) *apify.Run); ok {
		r0 = rf(ctx, actorID, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*apify.Run)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, apify.RunInput) error); ok {
		r1 = rf(ctx, actorID, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetRun provides a mock function with given fields: ctx, runID
func (_m *MockClient) GetRun(ctx context.Context, runID string) (*apify.Run, error) {
	ret := _m.Called(ctx, runID)

	if len(ret) == 0 {
		panic("no return value specified for GetRun")
	}

	var r0 *apify.Run
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*apify.Run, error)); ok {
		return rf(ctx, runID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *apify.Run); ok {
		r0 = rf(ctx, runID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*apify.Run)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, runID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DatasetItems provides a mock function with given fields: ctx, datasetID
func (_m *MockClient) DatasetItems(ctx context.Context, datasetID string) ([]apify.PlaceItem, error) {
	ret := _m.Called(ctx, datasetID)

	if len(ret) == 0 {
		panic("no return value specified for DatasetItems")
	}

	var r0 []apify.PlaceItem
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]apify.PlaceItem, error)); ok {
		return rf(ctx, datasetID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []apify.PlaceItem); ok {
		r0 = rf(ctx, datasetID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]apify.PlaceItem)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, datasetID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// AbortRun provides a mock function with given fields: ctx, runID
func (_m *MockClient) AbortRun(ctx context.Context, runID string) error {
	ret := _m.Called(ctx, runID)

	if len(ret) == 0 {
		panic("no return value specified for AbortRun")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		return rf(ctx, runID)
	}
	return ret.Error(0)
}

// Limits provides a mock function with given fields: ctx
func (_m *MockClient) Limits(ctx context.Context) (*apify.AccountLimits, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Limits")
	}

	var r0 *apify.AccountLimits
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (*apify.AccountLimits, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) *apify.AccountLimits); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*apify.AccountLimits)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockClient creates a new instance of MockClient.
func NewMockClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClient {
	mock := &MockClient{}
	mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

package iterators_test

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
)

// MockIntIterator is a mock of a stoppable Iterator[int].
type MockIntIterator struct {
	ctrl     *gomock.Controller
	recorder *MockIntIteratorMockRecorder
}

// MockIntIteratorMockRecorder is the mock recorder for MockIntIterator.
type MockIntIteratorMockRecorder struct {
	mock *MockIntIterator
}

// NewMockIntIterator creates a new mock instance.
func NewMockIntIterator(ctrl *gomock.Controller) *MockIntIterator {
	mock := &MockIntIterator{ctrl: ctrl}
	mock.recorder = &MockIntIteratorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIntIterator) EXPECT() *MockIntIteratorMockRecorder {
	return m.recorder
}

// Next mocks base method.
func (m *MockIntIterator) Next() (int, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Next")
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// Next indicates an expected call of Next.
func (mr *MockIntIteratorMockRecorder) Next() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Next", reflect.TypeOf((*MockIntIterator)(nil).Next))
}

// Stop mocks base method.
func (m *MockIntIterator) Stop() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Stop")
}

// Stop indicates an expected call of Stop.
func (mr *MockIntIteratorMockRecorder) Stop() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Stop", reflect.TypeOf((*MockIntIterator)(nil).Stop))
}

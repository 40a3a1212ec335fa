// Package mocks provides mock implementations for testing the admin client core.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the port interfaces. The mocks are generated using go:generate directives
// and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockCacheRepository(ctrl)
//	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
package mocks

// Generate mock for CacheRepository interface from internal/ports package.
// This creates MockCacheRepository with methods for all CacheRepository interface methods:
// Get, Set, Delete, DeletePrefix
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=cache_repository_mock.go github.com/Mohamed-Esmat/fms-upskilling-guide/internal/ports CacheRepository

// Generate mock for StateStore interface from internal/ports package.
// This creates MockStateStore with methods for all StateStore interface methods:
// Get, Set, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=state_store_mock.go github.com/Mohamed-Esmat/fms-upskilling-guide/internal/ports StateStore

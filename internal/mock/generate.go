package mock

//go:generate go run go.uber.org/mock/mockgen -destination compactor.go -package mock github.com/buildbarn/bb-defrag/pkg/compactor Observer

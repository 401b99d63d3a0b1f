package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/player --output domain/player --outpkg playermock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/team --output domain/team --outpkg teammock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/volunteer --output domain/volunteer --outpkg volunteermock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name CheckpointRepository --dir ../domain/draft --output domain/draft --outpkg draftmock --filename checkpoint_repository_mock.go

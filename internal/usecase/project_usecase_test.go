package usecase

import (
	"context"
	"errors"
	"testing"

	"buildsite/internal/domain/entities"
	mock_interfaces "buildsite/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProjectUseCase_Create(t *testing.T) {
	t.Run("name required", func(t *testing.T) {
		uc := NewProjectUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Project{Name: "   "})
		if !errors.Is(err, ErrInvalidProjectName) {
			t.Fatalf("expected ErrInvalidProjectName, got %v", err)
		}
	})

	t.Run("new project starts active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.Status != entities.ProjectStatusActive {
					t.Fatalf("expected active, got %s", p.Status)
				}
				if p.ID == "" {
					t.Fatalf("expected generated id")
				}
				return p, nil
			},
		)

		p, err := uc.Create(context.Background(), entities.Project{Name: "Riverside Duplex", ClientID: "client-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name != "Riverside Duplex" {
			t.Fatalf("unexpected project: %+v", p)
		}
	})
}

func TestProjectUseCase_Archive(t *testing.T) {
	t.Run("unknown project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().UpdateStatus(gomock.Any(), "prj-404", entities.ProjectStatusArchived).Return(entities.Project{}, nil)

		_, err := uc.Archive(context.Background(), "prj-404")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("archives an active project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().UpdateStatus(gomock.Any(), "prj-1", entities.ProjectStatusArchived).
			Return(entities.Project{ID: "prj-1", Status: entities.ProjectStatusArchived}, nil)

		p, err := uc.Archive(context.Background(), "prj-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.ProjectStatusArchived {
			t.Fatalf("expected archived, got %s", p.Status)
		}
	})
}

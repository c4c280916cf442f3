package repository_test

import (
	"context"
	"fmt"

	"github.com/go-arrower/userposts/repository"
)

func Example_extendRepositoryWithCascade() {
	ctx := context.Background()

	files := repository.NewMemoryRepository[File, int]()
	folders := NewFolderMemoryRepository(files)

	folder, _ := folders.CreateWithNextID(ctx, func(id FolderID) Folder { return Folder{ID: id, Name: "docs"} })
	_, _ = files.CreateWithNextID(ctx, func(id int) File { return File{ID: id, FolderID: folder.ID, Name: "a.md"} })
	_, _ = files.CreateWithNextID(ctx, func(id int) File { return File{ID: id, FolderID: folder.ID, Name: "b.md"} })

	_ = folders.DeleteByID(ctx, folder.ID)

	n, _ := files.Count(ctx)
	fmt.Println(n)

	next, _ := folders.CreateWithNextID(ctx, func(id FolderID) Folder { return Folder{ID: id, Name: "notes"} })
	fmt.Println(next.ID)

	// Output:
	// 0
	// 2
}

type (
	FolderID int
	Folder   struct {
		ID   FolderID
		Name string
	}
	File struct {
		ID       int
		FolderID FolderID
		Name     string
	}
)

func NewFolderMemoryRepository(files *repository.MemoryRepository[File, int]) *FolderMemoryRepository {
	return &FolderMemoryRepository{
		MemoryRepository: repository.NewMemoryRepository[Folder, FolderID](),
		files:            files,
	}
}

// FolderMemoryRepository removes the files of a folder together with the folder.
type FolderMemoryRepository struct {
	*repository.MemoryRepository[Folder, FolderID]

	files *repository.MemoryRepository[File, int]
}

// DeleteByID overwrites the method of the embedded MemoryRepository.
func (repo *FolderMemoryRepository) DeleteByID(ctx context.Context, id FolderID) error {
	return repo.DeleteByIDThen(ctx, id, func(folder Folder) error {
		_, err := repo.files.DeleteBy(ctx, func(f File) bool { return f.FolderID == folder.ID })

		return err
	})
}

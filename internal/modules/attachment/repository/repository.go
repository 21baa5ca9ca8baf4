package repository

// Repository stages media folders that accompany an export
type Repository interface {
	CopyFolders(source string) ([]string, error)
}

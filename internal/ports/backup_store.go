package ports

// BackupStore keeps copies of the recipe file taken before each save.
type BackupStore interface {
	// SaveBackup copies the current content of sourcePath into the backup
	// area and returns a backup id. A missing source file yields ("", nil).
	SaveBackup(sourcePath string) (id string, err error)
}

package repositories

// VoxdriveDbRepository groups every query against the voxdrive database.
// Methods are spread across the *_repository.go files of this package.
type VoxdriveDbRepository struct{}

func NewVoxdriveDbRepository() *VoxdriveDbRepository {
	return &VoxdriveDbRepository{}
}

package domain

// Role names one per-stage working directory.
type Role string

const (
	RoleRawExtract Role = "full"
	RoleCleaned    Role = "stripped"
	RolePreview    Role = "preview"
	RoleVideo      Role = "video"
	RoleImages     Role = "images"
)

// Roles lists every working-set role in creation order.
func Roles() []Role {
	return []Role{RoleRawExtract, RoleCleaned, RolePreview, RoleVideo, RoleImages}
}

// WorkingSet is the set of per-role directories used by one pipeline run.
type WorkingSet struct {
	JobID int64
	Root  string
	Dirs  map[Role]string
}

func (w *WorkingSet) Dir(role Role) string {
	return w.Dirs[role]
}

package domain

// EntryState represents the lifecycle state of a time entry.
// STOPPED is terminal; no further transitions are permitted.
type EntryState string

const (
	EntryStateRunning EntryState = "RUNNING"
	EntryStatePaused  EntryState = "PAUSED"
	EntryStateStopped EntryState = "STOPPED"
)

func (s EntryState) String() string { return string(s) }

func (s EntryState) IsValid() bool {
	switch s {
	case EntryStateRunning, EntryStatePaused, EntryStateStopped:
		return true
	}
	return false
}

// IsTerminal returns true for states that permit no further transitions.
func (s EntryState) IsTerminal() bool { return s == EntryStateStopped }

// IsActive returns true for states that occupy the user's active slot.
func (s EntryState) IsActive() bool {
	return s == EntryStateRunning || s == EntryStatePaused
}

// UserRole represents the authorization role of a user.
type UserRole string

const (
	UserRoleUser    UserRole = "USER"
	UserRoleManager UserRole = "MANAGER"
	UserRoleAdmin   UserRole = "ADMIN"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleManager, UserRoleAdmin:
		return true
	}
	return false
}

// CanViewTeamReports returns true for roles allowed to query team-wide totals.
func (r UserRole) CanViewTeamReports() bool {
	return r == UserRoleManager || r == UserRoleAdmin
}

// CanManageProjects returns true for roles allowed to mutate projects and tasks.
func (r UserRole) CanManageProjects() bool {
	return r == UserRoleManager || r == UserRoleAdmin
}

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "ACTIVE"
	ProjectStatusArchived ProjectStatus = "ARCHIVED"
)

func (s ProjectStatus) String() string { return string(s) }

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusArchived:
		return true
	}
	return false
}

// TaskStatus represents the lifecycle state of a task within a project.
type TaskStatus string

const (
	TaskStatusOpen TaskStatus = "OPEN"
	TaskStatusDone TaskStatus = "DONE"
)

func (s TaskStatus) String() string { return string(s) }

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusOpen, TaskStatusDone:
		return true
	}
	return false
}

// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"fmt"
	"time"

	"github.com/alkharfy/cveeez-dash/internal/api"
	"github.com/alkharfy/cveeez-dash/internal/entities"
)

const dateLayout = "2006-01-02"

func toDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// FromDate parses a YYYY-MM-DD string. Absent or empty input yields nil;
// malformed input is an ErrInvalidArgument.
func FromDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, fmt.Errorf("%w: Invalid date %q, expected YYYY-MM-DD", entities.ErrInvalidArgument, *s)
	}
	return &t, nil
}

func toUserRef(r *entities.UserRef) *api.UserRef {
	if r == nil {
		return nil
	}
	return &api.UserRef{ID: r.ID, Name: r.Name, Email: r.Email}
}

// ToAPIUser maps entities.User to transport model.
func ToAPIUser(u entities.User) api.User {
	return api.User{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Name:      u.Name,
		Role:      string(u.Role),
		AvatarURL: u.AvatarURL,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToAPIUserList maps a slice of users.
func ToAPIUserList(list []entities.User) []api.User {
	res := make([]api.User, 0, len(list))
	for _, u := range list {
		res = append(res, ToAPIUser(u))
	}
	return res
}

func toMemberUser(u *entities.MemberUser) *api.MemberUser {
	if u == nil {
		return nil
	}
	return &api.MemberUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role)}
}

// ToAPITeamMember maps a membership row.
func ToAPITeamMember(m entities.TeamMember) api.TeamMember {
	return api.TeamMember{
		ID:       m.ID,
		TeamID:   m.TeamID,
		UserID:   m.UserID,
		JoinedAt: m.JoinedAt,
		User:     toMemberUser(m.User),
	}
}

// ToAPITeam maps entities.Team to transport model.
func ToAPITeam(t entities.Team) api.Team {
	members := make([]api.TeamMember, 0, len(t.Members))
	for _, m := range t.Members {
		members = append(members, ToAPITeamMember(m))
	}
	return api.Team{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		LeaderID:    t.LeaderID,
		Leader:      toUserRef(t.Leader),
		Members:     members,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToAPITeamList maps a slice of teams.
func ToAPITeamList(list []entities.Team) []api.Team {
	res := make([]api.Team, 0, len(list))
	for _, t := range list {
		res = append(res, ToAPITeam(t))
	}
	return res
}

// ToAPIProject maps entities.Project to transport model.
func ToAPIProject(p entities.Project) api.Project {
	var team *api.ProjectTeam
	if p.Team != nil {
		members := make([]api.MemberUser, 0, len(p.Team.Members))
		for _, m := range p.Team.Members {
			m := m
			members = append(members, *toMemberUser(&m))
		}
		team = &api.ProjectTeam{
			ID:         p.Team.ID,
			Name:       p.Team.Name,
			LeaderName: p.Team.LeaderName,
			Members:    members,
		}
	}

	tasks := make([]api.TaskRef, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		tasks = append(tasks, api.TaskRef{
			ID:           t.ID,
			Title:        t.Title,
			Status:       string(t.Status),
			Priority:     string(t.Priority),
			AssignedTo:   t.AssignedTo,
			AssignedName: t.AssignedName,
		})
	}
	if p.Tasks == nil {
		tasks = nil
	}

	return api.Project{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		ClientID:    p.ClientID,
		Client:      toUserRef(p.Client),
		Status:      string(p.Status),
		StartDate:   toDate(p.StartDate),
		EndDate:     toDate(p.EndDate),
		TeamID:      p.TeamID,
		Team:        team,
		Tasks:       tasks,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToAPIProjectList maps a slice of projects.
func ToAPIProjectList(list []entities.Project) []api.Project {
	res := make([]api.Project, 0, len(list))
	for _, p := range list {
		res = append(res, ToAPIProject(p))
	}
	return res
}

// ToAPIComment maps entities.Comment to transport model.
func ToAPIComment(c entities.Comment) api.Comment {
	var user *api.CommentUser
	if c.User != nil {
		user = &api.CommentUser{ID: c.User.ID, Name: c.User.Name, Email: c.User.Email, AvatarURL: c.User.AvatarURL}
	}
	return api.Comment{
		ID:        c.ID,
		TaskID:    c.TaskID,
		UserID:    c.UserID,
		Content:   c.Content,
		User:      user,
		CreatedAt: c.CreatedAt,
	}
}

// ToAPICommentList maps a slice of comments.
func ToAPICommentList(list []entities.Comment) []api.Comment {
	res := make([]api.Comment, 0, len(list))
	for _, c := range list {
		res = append(res, ToAPIComment(c))
	}
	return res
}

// ToAPITask maps entities.Task to transport model.
func ToAPITask(t entities.Task) api.Task {
	var project *api.ProjectRef
	if t.Project != nil {
		project = &api.ProjectRef{ID: t.Project.ID, Name: t.Project.Name}
	}

	var comments []api.Comment
	if t.Comments != nil {
		comments = ToAPICommentList(t.Comments)
	}

	return api.Task{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Status:         string(t.Status),
		Priority:       string(t.Priority),
		DueDate:        toDate(t.DueDate),
		EstimatedHours: t.EstimatedHours,
		AssignedTo:     t.AssignedTo,
		AssignedUser:   toUserRef(t.AssignedUser),
		ProjectID:      t.ProjectID,
		Project:        project,
		CreatedBy:      t.CreatedBy,
		CreatedUser:    toUserRef(t.CreatedUser),
		Comments:       comments,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

// ToAPITaskList maps a slice of tasks.
func ToAPITaskList(list []entities.Task) []api.Task {
	res := make([]api.Task, 0, len(list))
	for _, t := range list {
		res = append(res, ToAPITask(t))
	}
	return res
}

// ToAPIDashboard maps aggregate counts to transport model.
func ToAPIDashboard(s entities.DashboardStats) api.DashboardStats {
	return api.DashboardStats{
		TotalProjects:     s.TotalProjects,
		ActiveProjects:    s.ActiveProjects,
		CompletedProjects: s.CompletedProjects,
		OnHoldProjects:    s.OnHoldProjects,
		TotalTasks:        s.TotalTasks,
		PendingTasks:      s.PendingTasks,
		InProgressTasks:   s.InProgressTasks,
		CompletedTasks:    s.CompletedTasks,
		UrgentTasks:       s.UrgentTasks,
		TotalTeams:        s.TotalTeams,
		ActiveUsers:       s.ActiveUsers,
	}
}

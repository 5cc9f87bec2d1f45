// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"time"

	"industry-flow/internal/entities"
	oapi "industry-flow/internal/oapi"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// ToOAPIUser maps entities.User to transport model. The password hash never leaves the service.
func ToOAPIUser(u entities.User) oapi.User {
	return oapi.User{
		Id:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      oapi.UserRole(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// ToOAPISession maps a sign in result to the login response.
func ToOAPISession(s entities.Session) oapi.LoginResponse {
	return oapi.LoginResponse{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
		User:      ToOAPIUser(s.User),
	}
}

// FromOAPIMember builds an entities.TeamMember from transport DTO.
// Members are active unless the request says otherwise.
func FromOAPIMember(src oapi.TeamMemberInput) entities.TeamMember {
	active := true
	if src.IsActive != nil {
		active = *src.IsActive
	}
	return entities.TeamMember{
		UserID:     src.UserId,
		Name:       src.Name,
		Email:      src.Email,
		JobTitle:   deref(src.JobTitle),
		Department: deref(src.Department),
		Phone:      deref(src.Phone),
		IsActive:   active,
	}
}

// ToOAPIMember maps entities.TeamMember to transport model.
func ToOAPIMember(m entities.TeamMember) oapi.TeamMember {
	return oapi.TeamMember{
		Id:         m.ID,
		UserId:     m.UserID,
		Name:       m.Name,
		Email:      m.Email,
		JobTitle:   m.JobTitle,
		Department: m.Department,
		Phone:      m.Phone,
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// ToOAPIMemberList maps a slice of members.
func ToOAPIMemberList(list []entities.TeamMember) oapi.TeamMemberList {
	res := make([]oapi.TeamMember, 0, len(list))
	for _, m := range list {
		res = append(res, ToOAPIMember(m))
	}
	return oapi.TeamMemberList{Members: res}
}

// FromOAPIProject builds an entities.Project from transport DTO.
// Omitted money fields become zero.
func FromOAPIProject(src oapi.ProjectInput) entities.Project {
	var status entities.ProjectStatus
	if src.Status != nil {
		status = entities.ProjectStatus(*src.Status)
	}
	return entities.Project{
		Name:        src.Name,
		Client:      deref(src.Client),
		Sector:      deref(src.Sector),
		Description: deref(src.Description),
		Status:      status,
		Budget:      money(src.Budget),
		Revenue:     money(src.Revenue),
		Cost:        money(src.Cost),
		Currency:    deref(src.Currency),
		StartDate:   fromDate(src.StartDate),
		Deadline:    fromDate(src.Deadline),
		ManagerID:   src.ManagerId,
	}
}

// ToOAPIProject maps entities.Project to transport model.
func ToOAPIProject(p entities.Project) oapi.Project {
	return oapi.Project{
		Id:          p.ID,
		Name:        p.Name,
		Client:      p.Client,
		Sector:      p.Sector,
		Description: p.Description,
		Status:      oapi.ProjectStatus(p.Status),
		Stage:       oapi.PipelineStage(p.Stage),
		Budget:      p.Budget,
		Revenue:     p.Revenue,
		Cost:        p.Cost,
		Currency:    p.Currency,
		StartDate:   toDate(p.StartDate),
		Deadline:    toDate(p.Deadline),
		ManagerId:   p.ManagerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// FromOAPIProjectResource maps a transport project back to the domain.
// Used by the API client.
func FromOAPIProjectResource(p oapi.Project) entities.Project {
	return entities.Project{
		ID:          p.Id,
		Name:        p.Name,
		Client:      p.Client,
		Sector:      p.Sector,
		Description: p.Description,
		Status:      entities.ProjectStatus(p.Status),
		Stage:       entities.PipelineStage(p.Stage),
		Budget:      p.Budget,
		Revenue:     p.Revenue,
		Cost:        p.Cost,
		Currency:    p.Currency,
		StartDate:   fromDate(p.StartDate),
		Deadline:    fromDate(p.Deadline),
		ManagerID:   p.ManagerId,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToOAPIProjectList maps a slice of projects.
func ToOAPIProjectList(list []entities.Project) oapi.ProjectList {
	res := make([]oapi.Project, 0, len(list))
	for _, p := range list {
		res = append(res, ToOAPIProject(p))
	}
	return oapi.ProjectList{Projects: res}
}

// ToOAPIStageChange maps a pipeline move result.
func ToOAPIStageChange(ch entities.StageChange) oapi.StageChangeResponse {
	return oapi.StageChangeResponse{
		Project:       ToOAPIProject(ch.Project),
		PreviousStage: oapi.PipelineStage(ch.Previous),
	}
}

// ProjectFilterFromParams converts list query parameters to a filter.
func ProjectFilterFromParams(params oapi.ListProjectsParams) entities.ProjectFilter {
	f := entities.ProjectFilter{
		Search:    deref(params.Search),
		Sector:    deref(params.Sector),
		Status:    deref(params.Status),
		Stage:     deref(params.Stage),
		Client:    deref(params.Client),
		ManagerID: deref(params.ManagerId),
	}
	if params.SortBy != nil {
		f.SortBy = string(*params.SortBy)
	}
	if params.Order != nil {
		f.Order = string(*params.Order)
	}
	if params.Limit != nil {
		f.Limit = *params.Limit
	}
	if params.Offset != nil {
		f.Offset = *params.Offset
	}
	return f
}

// FromOAPITask builds an entities.Task from transport DTO.
func FromOAPITask(src oapi.TaskInput) entities.Task {
	t := entities.Task{
		ProjectID:   deref(src.ProjectId),
		Title:       src.Title,
		Description: deref(src.Description),
		AssigneeID:  src.AssigneeId,
		DueDate:     fromDate(src.DueDate),
	}
	if src.Status != nil {
		t.Status = entities.TaskStatus(*src.Status)
	}
	if src.Priority != nil {
		t.Priority = entities.TaskPriority(*src.Priority)
	}
	return t
}

// ToOAPITask maps entities.Task to transport model; overdue is evaluated at now.
func ToOAPITask(t entities.Task, now time.Time) oapi.Task {
	return oapi.Task{
		Id:          t.ID,
		ProjectId:   t.ProjectID,
		Title:       t.Title,
		Description: t.Description,
		Status:      oapi.TaskStatus(t.Status),
		Priority:    oapi.TaskPriority(t.Priority),
		AssigneeId:  t.AssigneeID,
		DueDate:     toDate(t.DueDate),
		Position:    t.Position,
		Overdue:     t.Overdue(now),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToOAPITaskList maps a slice of tasks.
func ToOAPITaskList(list []entities.Task, now time.Time) oapi.TaskList {
	res := make([]oapi.Task, 0, len(list))
	for _, t := range list {
		res = append(res, ToOAPITask(t, now))
	}
	return oapi.TaskList{Tasks: res}
}

// TaskFilterFromParams converts list query parameters to a filter.
func TaskFilterFromParams(params oapi.ListTasksParams) entities.TaskFilter {
	return entities.TaskFilter{
		ProjectID:  deref(params.ProjectId),
		AssigneeID: deref(params.AssigneeId),
		Status:     deref(params.Status),
		Priority:   deref(params.Priority),
		DueFrom:    fromDate(params.DueFrom),
		DueTo:      fromDate(params.DueTo),
	}
}

// ToOAPINotification maps entities.Notification to transport model.
func ToOAPINotification(n entities.Notification) oapi.Notification {
	return oapi.Notification{
		Id:         n.ID,
		Type:       oapi.NotificationType(n.Type),
		Title:      n.Title,
		Message:    n.Message,
		EntityType: n.EntityType,
		EntityId:   n.EntityID,
		Read:       n.Read,
		CreatedAt:  n.CreatedAt,
	}
}

// ToOAPINotificationList maps a slice of notifications.
func ToOAPINotificationList(list []entities.Notification) oapi.NotificationList {
	res := make([]oapi.Notification, 0, len(list))
	for _, n := range list {
		res = append(res, ToOAPINotification(n))
	}
	return oapi.NotificationList{Notifications: res}
}

// FromOAPINotification maps a transport notification back to the domain.
// Used by the API client.
func FromOAPINotification(n oapi.Notification) entities.Notification {
	return entities.Notification{
		ID:         n.Id,
		Type:       entities.NotificationType(n.Type),
		Title:      n.Title,
		Message:    n.Message,
		EntityType: n.EntityType,
		EntityID:   n.EntityId,
		Read:       n.Read,
		CreatedAt:  n.CreatedAt,
	}
}

// ToOAPIDocument maps entities.Document to transport model.
func ToOAPIDocument(d entities.Document) oapi.Document {
	res := oapi.Document{
		Id:        d.ID,
		ProjectId: d.ProjectID,
		Name:      d.Name,
		Url:       d.URL,
		Provider:  oapi.DocumentProvider(d.Provider),
		AddedBy:   d.AddedBy,
		CreatedAt: d.CreatedAt,
	}
	if d.ExternalID != "" {
		res.ExternalId = &d.ExternalID
	}
	if d.MimeType != "" {
		res.MimeType = &d.MimeType
	}
	if d.Size > 0 {
		res.Size = &d.Size
	}
	return res
}

// ToOAPIDocumentList maps a slice of documents.
func ToOAPIDocumentList(list []entities.Document) oapi.DocumentList {
	res := make([]oapi.Document, 0, len(list))
	for _, d := range list {
		res = append(res, ToOAPIDocument(d))
	}
	return oapi.DocumentList{Documents: res}
}

// RevenueQueryFromParams converts report query parameters.
func RevenueQueryFromParams(params oapi.GetRevenueParams) entities.RevenueQuery {
	q := entities.RevenueQuery{
		Currency: deref(params.Currency),
		Filter: entities.ProjectFilter{
			Sector:    deref(params.Sector),
			Status:    deref(params.Status),
			Stage:     deref(params.Stage),
			Client:    deref(params.Client),
			ManagerID: deref(params.ManagerId),
		},
	}
	if params.GroupBy != nil {
		q.GroupBy = entities.RevenueGroupBy(*params.GroupBy)
	}
	return q
}

// ToOAPIRevenueReport maps the aggregation result.
func ToOAPIRevenueReport(r entities.RevenueReport) oapi.RevenueReport {
	buckets := make([]oapi.RevenueBucket, 0, len(r.Buckets))
	for _, b := range r.Buckets {
		buckets = append(buckets, toOAPIBucket(b))
	}
	return oapi.RevenueReport{
		Currency: r.Currency,
		GroupBy:  string(r.GroupBy),
		Buckets:  buckets,
		Total:    toOAPIBucket(r.Total),
		Skipped:  r.Skipped,
	}
}

func toOAPIBucket(b entities.RevenueBucket) oapi.RevenueBucket {
	return oapi.RevenueBucket{
		Key:          b.Key,
		Revenue:      b.Revenue,
		Cost:         b.Cost,
		Profit:       b.Profit,
		Margin:       b.Margin,
		ProjectCount: b.ProjectCount,
	}
}

// ToOAPISummary maps dashboard counters.
func ToOAPISummary(s entities.DashboardSummary) oapi.DashboardSummary {
	return oapi.DashboardSummary{
		ProjectsByStatus: toOAPICounts(s.ProjectsByStatus),
		ProjectsByStage:  toOAPICounts(s.ProjectsByStage),
		TasksByStatus:    toOAPICounts(s.TasksByStatus),
		OverdueTasks:     s.OverdueTasks,
		ActiveMembers:    s.ActiveMembers,
	}
}

func toOAPICounts(list []entities.CountStat) []oapi.CountStat {
	res := make([]oapi.CountStat, 0, len(list))
	for _, s := range list {
		res = append(res, oapi.CountStat{Key: s.Key, Count: s.Count})
	}
	return res
}

// ToOAPIStages maps the ordered pipeline.
func ToOAPIStages(stages []entities.PipelineStage) oapi.PipelineStagesResponse {
	res := make([]oapi.PipelineStage, 0, len(stages))
	for _, s := range stages {
		res = append(res, oapi.PipelineStage(s))
	}
	return oapi.PipelineStagesResponse{Stages: res}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func money(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}

func fromDate(d *openapi_types.Date) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

func toDate(t *time.Time) *openapi_types.Date {
	if t == nil {
		return nil
	}
	return &openapi_types.Date{Time: *t}
}

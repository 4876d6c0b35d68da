package storage

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/data/aztables"

	"taskpad/domain"
)

// ErrNotFound is returned when a task row does not exist for the owner.
var ErrNotFound = errors.New("task not found")

// Storage provides access to the underlying task table.
type Storage struct {
	taskTable *aztables.Client
}

// New creates a Storage instance from the given connection string.
func New(connStr, tasksTable string) (*Storage, error) {
	tablesClientOptions := aztables.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Retry: policy.RetryOptions{
				MaxRetries:    3,
				TryTimeout:    time.Minute * 3,
				RetryDelay:    time.Second * 1,
				MaxRetryDelay: time.Second * 15,
				StatusCodes:   []int{408, 429, 500, 502, 503, 504},
			},
		},
	}
	svc, err := aztables.NewServiceClientFromConnectionString(connStr, &tablesClientOptions)
	if err != nil {
		return nil, err
	}
	return &Storage{taskTable: svc.NewClient(tasksTable)}, nil
}

// taskEntity is the table row representation. PartitionKey is the owner id,
// RowKey the task id. Times are stored as RFC 3339 strings; an empty DueDate
// means the task is undated.
type taskEntity struct {
	aztables.Entity
	Title       string `json:"Title"`
	Description string `json:"Description"`
	DueDate     string `json:"DueDate"`
	Priority    string `json:"Priority"`
	Status      string `json:"Status"`
	Tags        string `json:"Tags"`
	CreatedAt   string `json:"CreatedAt"`
	UpdatedAt   string `json:"UpdatedAt"`
}

func entityFromTask(ownerID string, t domain.Task) taskEntity {
	ent := taskEntity{
		Entity: aztables.Entity{
			PartitionKey: ownerID,
			RowKey:       t.ID,
		},
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority.String(),
		Status:      t.Status,
		Tags:        t.Tags,
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if t.DueDate != nil {
		ent.DueDate = t.DueDate.UTC().Format(time.RFC3339Nano)
	}
	return ent
}

func decodeTaskEntity(data []byte) (domain.Task, error) {
	var ent taskEntity
	if err := json.Unmarshal(data, &ent); err != nil {
		return domain.Task{}, err
	}
	task := domain.Task{
		ID:          ent.RowKey,
		Title:       ent.Title,
		Description: ent.Description,
		Priority:    domain.ParsePriority(ent.Priority),
		Status:      ent.Status,
		Tags:        ent.Tags,
	}
	if ent.DueDate != "" {
		due, err := time.Parse(time.RFC3339Nano, ent.DueDate)
		if err != nil {
			return domain.Task{}, err
		}
		task.DueDate = &due
	}
	if ent.CreatedAt != "" {
		created, err := time.Parse(time.RFC3339Nano, ent.CreatedAt)
		if err != nil {
			return domain.Task{}, err
		}
		task.CreatedAt = created
	}
	if ent.UpdatedAt != "" {
		updated, err := time.Parse(time.RFC3339Nano, ent.UpdatedAt)
		if err != nil {
			return domain.Task{}, err
		}
		task.UpdatedAt = updated
	}
	return task, nil
}

// ListTasks retrieves all tasks for the provided owner.
func (s *Storage) ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error) {
	filter := "PartitionKey eq '" + ownerID + "'"
	pager := s.taskTable.NewListEntitiesPager(&aztables.ListEntitiesOptions{Filter: &filter})
	tasks := []domain.Task{}
	for pager.More() {
		resp, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, e := range resp.Entities {
			task, err := decodeTaskEntity(e)
			if err != nil {
				return nil, err
			}
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

// InsertTask persists a new task row for the owner.
func (s *Storage) InsertTask(ctx context.Context, ownerID string, task domain.Task) error {
	data, err := json.Marshal(entityFromTask(ownerID, task))
	if err != nil {
		return err
	}
	_, err = s.taskTable.AddEntity(ctx, data, nil)
	return err
}

// DeleteTask removes the task row. A missing row maps to ErrNotFound so the
// handler can signal 404 by status alone.
func (s *Storage) DeleteTask(ctx context.Context, ownerID, taskID string) error {
	_, err := s.taskTable.DeleteEntity(ctx, ownerID, taskID, nil)
	if err != nil {
		var respErr *azcore.ResponseError
		if errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

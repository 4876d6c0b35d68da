package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"taskpad/domain"
	"taskpad/storage"
)

// Register wires up all API routes on the provided Echo instance. The owner
// id scopes every storage call; deduper may be nil when Redis is not
// configured.
func Register(e *echo.Echo, store Storage, deduper Deduper, ownerID string, logger *log.Logger) {
	e.GET("/api/tasks", listTasks(store, ownerID, logger))
	e.POST("/api/tasks", createTask(store, deduper, ownerID))
	e.DELETE("/api/tasks/:id", deleteTask(store, ownerID))
	e.GET("/healthz", healthz())
}

func healthz() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}
}

func listTasks(store Storage, ownerID string, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) (err error) {
		metrics, ctx := newTaskRequestMetrics(c.Request().Context(), logger)
		c.SetRequest(c.Request().WithContext(ctx))
		defer func() {
			metrics.Log(c.Response().Status, err)
		}()

		fetchStart := time.Now()
		tasks, fetchErr := store.ListTasks(ctx, ownerID)
		metrics.ObserveFetch(time.Since(fetchStart))
		if fetchErr != nil {
			metrics.SetErrorStage("storage")
			c.Logger().Error(fetchErr)
			err = c.String(http.StatusInternalServerError, fetchErr.Error())
			return err
		}
		metrics.SetTasksReturned(len(tasks))

		encodeStart := time.Now()
		err = c.JSON(http.StatusOK, tasks)
		metrics.ObserveEncode(time.Since(encodeStart))
		if err != nil {
			metrics.SetErrorStage("encode_response")
		}
		return err
	}
}

func createTask(store Storage, deduper Deduper, ownerID string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		lr := io.LimitReader(c.Request().Body, createTaskMaxSize)
		dec := sonic.ConfigStd.NewDecoder(lr)
		dec.DisallowUnknownFields()

		var draft domain.TaskDraft
		if err := dec.Decode(&draft); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid body"})
		}
		if err := draft.Validate(); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
		}

		idemKey := c.Request().Header.Get(HeaderIdempotencyKey)
		if idemKey != "" && deduper != nil {
			added, err := deduper.Add(ctx, ownerID, idemKey)
			if err != nil {
				c.Logger().Error(err)
				return c.JSON(http.StatusInternalServerError, errorResponse{Message: "failed to create task"})
			}
			if !added {
				return c.JSON(http.StatusConflict, errorResponse{Message: "duplicate request"})
			}
		}

		now := time.Unix(0, nextTimestamp()).UTC()
		task := domain.Task{
			ID:          uuid.NewString(),
			Title:       draft.Title,
			Description: draft.Description,
			DueDate:     draft.DueDate,
			Priority:    draft.Priority,
			Status:      draft.Status,
			Tags:        draft.Tags,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if task.Status == "" {
			task.Status = domain.DefaultStatus
		}

		if err := store.InsertTask(ctx, ownerID, task); err != nil {
			if idemKey != "" && deduper != nil {
				if rerr := deduper.Remove(ctx, ownerID, idemKey); rerr != nil {
					c.Logger().Errorf("dedupe rollback failed: %v, key: %s", rerr, idemKey)
				}
			}
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, errorResponse{Message: "failed to create task"})
		}

		return c.JSON(http.StatusCreated, task)
	}
}

func deleteTask(store Storage, ownerID string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		taskID := c.Param("id")
		if taskID == "" {
			return c.NoContent(http.StatusBadRequest)
		}

		if err := store.DeleteTask(ctx, ownerID, taskID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return c.NoContent(http.StatusNotFound)
			}
			c.Logger().Error(err)
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Varun5711/taskhub/internal/events"
	"github.com/Varun5711/taskhub/internal/logger"
	"github.com/Varun5711/taskhub/internal/middleware"
	"github.com/Varun5711/taskhub/internal/models"
	"github.com/Varun5711/taskhub/internal/service"
	"github.com/Varun5711/taskhub/internal/validation"
	"github.com/google/uuid"
)

type TaskHandler struct {
	taskService *service.TaskService
	producer    *events.ActivityProducer
	log         *logger.Logger
}

// NewTaskHandler wires the task routes. producer may be nil when the
// activity pipeline is disabled.
func NewTaskHandler(taskService *service.TaskService, producer *events.ActivityProducer) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		producer:    producer,
		log:         logger.New("task-handler"),
	}
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	search := r.URL.Query().Get("search")
	status := r.URL.Query().Get("status")

	tasks, err := h.taskService.List(r.Context(), userID, search, status)
	if err != nil {
		h.log.Error("Failed to list tasks: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, models.ListTasksResponse{Tasks: tasks})
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := h.taskService.Create(r.Context(), userID, &req)
	if err != nil {
		if validation.IsValidationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("Failed to create task: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.publishActivity(r, task, events.ActionCreated)

	respondJSON(w, http.StatusCreated, models.TaskResponse{
		Message: "Task created successfully",
		Task:    task,
	})
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	taskID := extractTaskID(r.URL.Path)
	if taskID == "" {
		respondError(w, http.StatusNotFound, "Task not found")
		return
	}

	var req models.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := h.taskService.Update(r.Context(), userID, taskID, &req)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			respondError(w, http.StatusNotFound, "Task not found")
			return
		}
		h.log.Error("Failed to update task: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.publishActivity(r, task, events.ActionUpdated)

	respondJSON(w, http.StatusOK, models.TaskResponse{
		Message: "Task updated successfully",
		Task:    task,
	})
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	taskID := extractTaskID(r.URL.Path)
	if taskID == "" {
		respondError(w, http.StatusNotFound, "Task not found")
		return
	}

	if err := h.taskService.Delete(r.Context(), userID, taskID); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			respondError(w, http.StatusNotFound, "Task not found")
			return
		}
		h.log.Error("Failed to delete task: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.publishActivity(r, &models.Task{ID: taskID, UserID: userID}, events.ActionDeleted)

	respondJSON(w, http.StatusOK, models.MessageResponse{
		Message: "Task deleted successfully",
	})
}

// publishActivity is fire-and-forget: a failed publish never fails the
// request that caused it.
func (h *TaskHandler) publishActivity(r *http.Request, task *models.Task, action string) {
	if h.producer == nil {
		return
	}

	event := &events.ActivityEvent{
		EventID:   uuid.New().String(),
		TaskID:    task.ID,
		UserID:    task.UserID,
		Action:    action,
		Status:    task.Status,
		Timestamp: time.Now().Unix(),
		IP:        getClientIP(r),
		UserAgent: r.UserAgent(),
	}

	if err := h.producer.Publish(r.Context(), event); err != nil {
		h.log.Warn("Failed to publish activity event: %v", err)
	}
}

// extractTaskID pulls the id segment from /api/tasks/{id}.
func extractTaskID(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) >= 3 {
		return parts[2]
	}
	return ""
}

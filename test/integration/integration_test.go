package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"
)

var (
	apiURL           = getEnv("TASK_SERVICE_URL", "http://localhost:8080")
	testUserEmail    = fmt.Sprintf("test-%d@example.com", time.Now().UnixNano())
	testUserPassword = "testPassword123"
	authToken        string
	createdTaskID    string
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func TestMain(m *testing.M) {
	if os.Getenv("INTEGRATION_TEST") != "true" {
		fmt.Println("Skipping integration tests. Set INTEGRATION_TEST=true to run.")
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func doJSON(t *testing.T, method, path string, payload interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("failed to encode payload: %v", err)
		}
	}

	req, err := http.NewRequest(method, apiURL+path, &body)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	resp.Body.Close()
	return resp, result
}

func TestHealthCheck(t *testing.T) {
	resp, err := http.Get(apiURL + "/health")
	if err != nil {
		t.Fatalf("health check failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}
}

func TestUserSignup(t *testing.T) {
	resp, result := doJSON(t, http.MethodPost, "/api/auth/signup", map[string]string{
		"email":    testUserEmail,
		"password": testUserPassword,
		"name":     "Test User",
	})

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.StatusCode)
	}

	if token, ok := result["token"].(string); ok {
		authToken = token
	}
	if authToken == "" {
		t.Error("expected auth token in signup response")
	}
}

func TestUserLogin(t *testing.T) {
	authToken = ""
	resp, result := doJSON(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    testUserEmail,
		"password": testUserPassword,
	})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	if token, ok := result["token"].(string); ok {
		authToken = token
	}
	if authToken == "" {
		t.Error("expected auth token in login response")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	saved := authToken
	authToken = ""
	resp, _ := doJSON(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    testUserEmail,
		"password": "definitely-wrong",
	})
	authToken = saved

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", resp.StatusCode)
	}
}

func TestProfile(t *testing.T) {
	if authToken == "" {
		t.Skip("no auth token available")
	}

	resp, result := doJSON(t, http.MethodGet, "/api/auth/profile", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	user, ok := result["user"].(map[string]interface{})
	if !ok {
		t.Fatal("expected user object in profile response")
	}
	if user["email"] != testUserEmail {
		t.Errorf("expected email '%s', got '%v'", testUserEmail, user["email"])
	}
}

func TestCreateTask(t *testing.T) {
	if authToken == "" {
		t.Skip("no auth token available")
	}

	resp, result := doJSON(t, http.MethodPost, "/api/tasks", map[string]string{
		"title":       "Integration test task",
		"description": "Created by the integration suite",
	})

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.StatusCode)
	}

	task, ok := result["task"].(map[string]interface{})
	if !ok {
		t.Fatal("expected task object in response")
	}
	if task["status"] != "pending" {
		t.Errorf("expected status 'pending', got '%v'", task["status"])
	}
	if id, ok := task["id"].(string); ok {
		createdTaskID = id
	}
}

func TestCreateTask_MissingTitle(t *testing.T) {
	if authToken == "" {
		t.Skip("no auth token available")
	}

	resp, _ := doJSON(t, http.MethodPost, "/api/tasks", map[string]string{
		"description": "no title here",
	})

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", resp.StatusCode)
	}
}

func TestListTasks(t *testing.T) {
	if authToken == "" {
		t.Skip("no auth token available")
	}

	resp, result := doJSON(t, http.MethodGet, "/api/tasks", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	tasks, ok := result["tasks"].([]interface{})
	if !ok {
		t.Fatal("expected tasks array in response")
	}
	if len(tasks) == 0 {
		t.Error("expected at least one task")
	}
}

func TestSearchTasks(t *testing.T) {
	if authToken == "" {
		t.Skip("no auth token available")
	}

	resp, result := doJSON(t, http.MethodGet, "/api/tasks?search=INTEGRATION", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	tasks, ok := result["tasks"].([]interface{})
	if !ok {
		t.Fatal("expected tasks array in response")
	}
	if len(tasks) == 0 {
		t.Error("expected case-insensitive search to match the created task")
	}
}

func TestUpdateTask(t *testing.T) {
	if authToken == "" || createdTaskID == "" {
		t.Skip("no task available")
	}

	resp, result := doJSON(t, http.MethodPut, "/api/tasks/"+createdTaskID, map[string]string{
		"status": "completed",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	task, ok := result["task"].(map[string]interface{})
	if !ok {
		t.Fatal("expected task object in response")
	}
	if task["status"] != "completed" {
		t.Errorf("expected status 'completed', got '%v'", task["status"])
	}
}

func TestDeleteTask(t *testing.T) {
	if authToken == "" || createdTaskID == "" {
		t.Skip("no task available")
	}

	resp, _ := doJSON(t, http.MethodDelete, "/api/tasks/"+createdTaskID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodDelete, "/api/tasks/"+createdTaskID, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404 on second delete, got %d", resp.StatusCode)
	}
}

func TestUnauthorizedAccess(t *testing.T) {
	saved := authToken
	authToken = ""
	resp, _ := doJSON(t, http.MethodGet, "/api/tasks", nil)
	authToken = saved

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", resp.StatusCode)
	}
}

package lead

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Shinkhal/QuickEats/internal/user"
	"github.com/Shinkhal/QuickEats/pkg/token"
	"github.com/gin-gonic/gin"
)

// setupLeadRouter 装配一个只含线索路由的测试引擎
func setupLeadRouter(t *testing.T, svc *Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	token.Configure("test-secret", time.Hour)
	defaultService = svc

	router := gin.New()
	leadRoutes := router.Group("/api/lead", user.RequireAdmin())
	{
		leadRoutes.GET("/leads", GetLeads)
		leadRoutes.POST("/generate-lead", GenerateLead)
		leadRoutes.POST("/update-all-leads", UpdateAllLeads)
	}
	return router
}

func adminToken(t *testing.T) string {
	t.Helper()
	tok, err := token.GenerateToken(testUserID(100), user.RoleAdmin)
	if err != nil {
		t.Fatalf("无法生成管理员令牌: %v", err)
	}
	return tok
}

func doRequest(router *gin.Engine, method, path, bearer string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("无法解析响应体: %v", err)
	}
	return body
}

func TestLeadRoutesRequireAdmin(t *testing.T) {
	router := setupLeadRouter(t, newTestService(nil, nil, newMemoryStore()))

	// 未登录
	for _, probe := range []struct{ method, path string }{
		{http.MethodGet, "/api/lead/leads"},
		{http.MethodPost, "/api/lead/generate-lead"},
		{http.MethodPost, "/api/lead/update-all-leads"},
	} {
		w := doRequest(router, probe.method, probe.path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s 未登录应返回401，得到 %d", probe.method, probe.path, w.Code)
		}
	}

	// 普通用户
	userTok, err := token.GenerateToken(testUserID(101), user.RoleUser)
	if err != nil {
		t.Fatalf("无法生成用户令牌: %v", err)
	}
	w := doRequest(router, http.MethodGet, "/api/lead/leads", userTok, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("普通用户应返回403，得到 %d", w.Code)
	}
}

func TestGetLeadsEnvelope(t *testing.T) {
	id := testUserID(1)
	members := []Member{{ID: id, Name: "王芳", Email: "wang@example.com"}}
	store := newMemoryStore()
	store.rows[id] = Lead{UserID: id, LeadScore: 88, LeadQuality: QualityHigh}
	router := setupLeadRouter(t, newTestService(members, map[string]OrderStats{}, store))

	w := doRequest(router, http.MethodGet, "/api/lead/leads", adminToken(t), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, 期望 200", w.Code)
	}
	body := decodeBody(t, w)
	if body["success"] != true {
		t.Errorf("success = %v", body["success"])
	}
	if body["count"] != float64(1) {
		t.Errorf("count = %v, 期望 1", body["count"])
	}
	leads, ok := body["leads"].([]interface{})
	if !ok || len(leads) != 1 {
		t.Fatalf("leads字段不正确: %v", body["leads"])
	}
	first := leads[0].(map[string]interface{})
	for _, field := range []string{"userId", "name", "email", "leadScore", "leadQuality", "sessionDuration", "cartAbandonmentRate", "orderFrequency", "updatedAt"} {
		if _, exists := first[field]; !exists {
			t.Errorf("缺少字段 %s", field)
		}
	}
}

func TestGenerateLeadValidation(t *testing.T) {
	router := setupLeadRouter(t, newTestService(nil, nil, newMemoryStore()))
	admin := adminToken(t)

	// 缺少userId
	w := doRequest(router, http.MethodPost, "/api/lead/generate-lead", admin, []byte(`{}`))
	if w.Code != http.StatusBadRequest {
		t.Errorf("缺少userId应返回400，得到 %d", w.Code)
	}

	// ID格式非法
	w = doRequest(router, http.MethodPost, "/api/lead/generate-lead", admin, []byte(`{"userId":"not-a-uuid"}`))
	if w.Code != http.StatusBadRequest {
		t.Errorf("ID非法应返回400，得到 %d", w.Code)
	}

	// 用户不存在
	payload, _ := json.Marshal(map[string]string{"userId": testUserID(42)})
	w = doRequest(router, http.MethodPost, "/api/lead/generate-lead", admin, payload)
	if w.Code != http.StatusNotFound {
		t.Errorf("用户不存在应返回404，得到 %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["success"] != false {
		t.Errorf("失败响应的success应为false: %v", body["success"])
	}
}

func TestGenerateLeadSuccess(t *testing.T) {
	id := testUserID(3)
	members := []Member{{ID: id, Name: "赵强", Email: "zhao@example.com", Cart: map[string]int{"f1": 2}}}
	stats := map[string]OrderStats{id: {Count: 6, ItemCount: 2}}
	store := newMemoryStore()
	router := setupLeadRouter(t, newTestService(members, stats, store))

	payload, _ := json.Marshal(map[string]string{"userId": id})
	w := doRequest(router, http.MethodPost, "/api/lead/generate-lead", adminToken(t), payload)
	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, 期望 200; body=%s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["success"] != true {
		t.Errorf("success = %v", body["success"])
	}
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("data字段不正确: %v", body["data"])
	}
	// 放弃率0，15*6 + 240/8 = 120
	if data["leadScore"] != float64(120) {
		t.Errorf("leadScore = %v, 期望 120", data["leadScore"])
	}
	if data["leadQuality"] != QualityHigh {
		t.Errorf("leadQuality = %v", data["leadQuality"])
	}
	if _, ok := store.rows[id]; !ok {
		t.Error("线索未持久化")
	}
}

func TestUpdateAllLeadsEnvelope(t *testing.T) {
	members := []Member{
		{ID: testUserID(1), Name: "甲"},
		{ID: testUserID(2), Name: "乙"},
	}
	store := newMemoryStore()
	router := setupLeadRouter(t, newTestService(members, map[string]OrderStats{}, store))

	w := doRequest(router, http.MethodPost, "/api/lead/update-all-leads", adminToken(t), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, 期望 200", w.Code)
	}
	body := decodeBody(t, w)
	if body["success"] != true {
		t.Errorf("success = %v", body["success"])
	}
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("data字段不正确: %v", body["data"])
	}
	if data["processed"] != float64(2) {
		t.Errorf("processed = %v, 期望 2", data["processed"])
	}
	if leads, ok := data["leads"].([]interface{}); !ok || len(leads) != 2 {
		t.Errorf("leads字段不正确: %v", data["leads"])
	}
	if errs, ok := data["errors"].([]interface{}); !ok || len(errs) != 0 {
		t.Errorf("errors字段不正确: %v", data["errors"])
	}
}

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"realty-backend/models"
)

func TestGetMasterDataByKind(t *testing.T) {
	db := freshDB()
	seedMasterData(db)
	r := setupMasterRouter(db)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodGet, "/api/master/property-types", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if body := w.Body.String(); !strings.Contains(body, "Apartment") || !strings.Contains(body, "Villa") {
		t.Errorf("expected seeded property types in response: %s", body)
	}
}

func TestGetMasterDataUnknownKind(t *testing.T) {
	db := freshDB()
	r := setupMasterRouter(db)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodGet, "/api/master/amenities", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown kind, got %d", w.Code)
	}
}

func TestCreateMasterData(t *testing.T) {
	db := freshDB()
	_, token := seedTestUser(db, "admin@test.com", "admin")
	r := setupMasterRouter(db)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authRequest(http.MethodPost, "/api/admin/master/projects",
		map[string]string{"name_en": "Riverside Park", "name_vi": "Công viên ven sông"}, token))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var project models.Project
	if err := db.First(&project, "name_en = ?", "Riverside Park").Error; err != nil {
		t.Fatalf("project not persisted: %v", err)
	}
	if project.NameVi != "Công viên ven sông" {
		t.Errorf("unexpected name_vi: %q", project.NameVi)
	}
}

func TestCreateMasterDataRejectsDuplicateName(t *testing.T) {
	db := freshDB()
	seedMasterData(db)
	_, token := seedTestUser(db, "admin@test.com", "admin")
	r := setupMasterRouter(db)

	// Same name, different case.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, authRequest(http.MethodPost, "/api/admin/master/projects",
		map[string]string{"name_en": "acme towers"}, token))
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate name, got %d: %s", w.Code, w.Body.String())
	}

	// Colliding with the Vietnamese name of an existing record.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, authRequest(http.MethodPost, "/api/admin/master/property-types",
		map[string]string{"name_en": "Căn hộ"}, token))
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 for cross-locale duplicate, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateMasterDataRequiresName(t *testing.T) {
	db := freshDB()
	_, token := seedTestUser(db, "admin@test.com", "admin")
	r := setupMasterRouter(db)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authRequest(http.MethodPost, "/api/admin/master/zones",
		map[string]string{"name_vi": "Khu B"}, token))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without name_en, got %d", w.Code)
	}
}

func TestCreateMasterDataRequiresAdmin(t *testing.T) {
	db := freshDB()
	_, staffToken := seedTestUser(db, "staff@test.com", "staff")
	r := setupMasterRouter(db)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authRequest(http.MethodPost, "/api/admin/master/projects",
		map[string]string{"name_en": "Staff Project"}, staffToken))
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for staff, got %d", w.Code)
	}
}

func TestDeleteMasterData(t *testing.T) {
	db := freshDB()
	_, token := seedTestUser(db, "admin@test.com", "admin")
	r := setupMasterRouter(db)

	zone := models.Zone{MasterRecord: models.MasterRecord{NameEn: "Doomed Zone"}}
	db.Create(&zone)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authRequest(http.MethodDelete, "/api/admin/master/zones/"+zone.ID.String(), nil, token))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&models.Zone{}).Where("name_en = ?", "Doomed Zone").Count(&count)
	if count != 0 {
		t.Errorf("zone still visible after delete")
	}

	// Deleting again reports not found.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, authRequest(http.MethodDelete, "/api/admin/master/zones/"+zone.ID.String(), nil, token))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", w.Code)
	}
}

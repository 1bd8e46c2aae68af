package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/medicare-camp/camp-api/internal/models"
)

func addCamp(t *testing.T, h *CampHandler, fields CampFields) models.Camp {
	t.Helper()
	resp, err := h.HandleAddCamp(context.Background(), &AddCampRequest{Body: fields})
	if err != nil {
		t.Fatalf("HandleAddCamp failed: %v", err)
	}
	return resp.Body
}

func TestAddCampStartsEmpty(t *testing.T) {
	db := testDB(t)
	h := testCampHandler(t, db)

	camp := addCamp(t, h, CampFields{
		CampName:       "Eye Camp",
		CampLocation:   "Dhaka",
		CampTime:       time.Now().Add(24 * time.Hour),
		CampFee:        50,
		OrganizerEmail: "o@x.com",
	})
	if camp.ID == 0 {
		t.Fatal("expected a generated camp id")
	}
	if camp.ParticipantCount != 0 {
		t.Errorf("new camp must have participantCount 0, got %d", camp.ParticipantCount)
	}

	details, err := h.HandleViewCampDetails(context.Background(), &CampDetailsRequest{ID: "1"})
	if err != nil {
		t.Fatalf("HandleViewCampDetails failed: %v", err)
	}
	if details.Body.CampName != "Eye Camp" {
		t.Errorf("unexpected camp: %+v", details.Body)
	}
}

func TestAddCampRejectsNegativeFee(t *testing.T) {
	db := testDB(t)
	h := testCampHandler(t, db)

	_, err := h.HandleAddCamp(context.Background(), &AddCampRequest{Body: CampFields{
		CampName: "Bad", CampFee: -1, CampTime: time.Now(),
	}})
	assertStatus(t, err, http.StatusUnprocessableEntity)
}

func TestViewCampDetailsErrors(t *testing.T) {
	db := testDB(t)
	h := testCampHandler(t, db)

	_, err := h.HandleViewCampDetails(context.Background(), &CampDetailsRequest{ID: "not-a-number"})
	assertStatus(t, err, http.StatusBadRequest)

	_, err = h.HandleViewCampDetails(context.Background(), &CampDetailsRequest{ID: "42"})
	assertStatus(t, err, http.StatusNotFound)
}

func TestAllCampsListing(t *testing.T) {
	db := testDB(t)
	h := testCampHandler(t, db)

	base := time.Now()
	for i, c := range []CampFields{
		{CampName: "Eye Camp", CampLocation: "Dhaka", CampFee: 50, OrganizerEmail: "o@x.com"},
		{CampName: "Dental Camp", CampLocation: "Sylhet", CampFee: 20, OrganizerEmail: "o@x.com"},
		{CampName: "Cardiac Camp", CampLocation: "Dhaka", CampFee: 80, OrganizerEmail: "o@x.com"},
	} {
		c.CampTime = base.Add(time.Duration(i+1) * 24 * time.Hour)
		addCamp(t, h, c)
	}
	// A past camp never shows up in the upcoming listing.
	addCamp(t, h, CampFields{CampName: "Old Camp", CampLocation: "Dhaka", CampTime: base.Add(-24 * time.Hour), OrganizerEmail: "o@x.com"})

	resp, err := h.HandleAllCamps(context.Background(), &AllCampsRequest{})
	if err != nil {
		t.Fatalf("HandleAllCamps failed: %v", err)
	}
	if len(resp.Body) != 3 {
		t.Fatalf("expected 3 upcoming camps, got %d", len(resp.Body))
	}

	// Malformed pagination falls back to the full set instead of failing.
	resp, err = h.HandleAllCamps(context.Background(), &AllCampsRequest{CurrentPage: "NaN", PerPage: "undefined"})
	if err != nil {
		t.Fatalf("HandleAllCamps with malformed pagination failed: %v", err)
	}
	if len(resp.Body) != 3 {
		t.Errorf("expected full set on malformed pagination, got %d", len(resp.Body))
	}

	// Valid pagination bounds the page.
	resp, err = h.HandleAllCamps(context.Background(), &AllCampsRequest{CurrentPage: "1", PerPage: "2"})
	if err != nil {
		t.Fatalf("HandleAllCamps failed: %v", err)
	}
	if len(resp.Body) != 1 {
		t.Errorf("expected 1 camp on second page of size 2, got %d", len(resp.Body))
	}

	// Filter and sort combined.
	resp, err = h.HandleAllCamps(context.Background(), &AllCampsRequest{SearchLocation: "dhaka", SortData: "descending"})
	if err != nil {
		t.Fatalf("HandleAllCamps failed: %v", err)
	}
	if len(resp.Body) != 2 || resp.Body[0].CampFee != 80 {
		t.Errorf("filtered+sorted listing wrong: %+v", resp.Body)
	}

	_, err = h.HandleAllCamps(context.Background(), &AllCampsRequest{SortData: "bogus"})
	assertStatus(t, err, http.StatusUnprocessableEntity)
}

func TestTotalCampNumber(t *testing.T) {
	db := testDB(t)
	h := testCampHandler(t, db)

	addCamp(t, h, CampFields{CampName: "Eye Camp", CampLocation: "Dhaka", CampTime: time.Now().Add(time.Hour), OrganizerEmail: "o@x.com"})
	addCamp(t, h, CampFields{CampName: "Old Camp", CampLocation: "Dhaka", CampTime: time.Now().Add(-time.Hour), OrganizerEmail: "o@x.com"})

	resp, err := h.HandleTotalCampNumber(context.Background(), &TotalCampNumberRequest{})
	if err != nil {
		t.Fatalf("HandleTotalCampNumber failed: %v", err)
	}
	if resp.Body.TotalCamp != 1 {
		t.Errorf("expected 1 upcoming camp, got %d", resp.Body.TotalCamp)
	}

	resp, err = h.HandleTotalCampNumber(context.Background(), &TotalCampNumberRequest{Search: "nomatch"})
	if err != nil {
		t.Fatalf("HandleTotalCampNumber failed: %v", err)
	}
	if resp.Body.TotalCamp != 0 {
		t.Errorf("expected 0 matches, got %d", resp.Body.TotalCamp)
	}
}

func TestUpdateCampUpsert(t *testing.T) {
	db := testDB(t)
	h := testCampHandler(t, db)

	camp := addCamp(t, h, CampFields{CampName: "Eye Camp", CampLocation: "Dhaka", CampTime: time.Now().Add(time.Hour), CampFee: 50, OrganizerEmail: "o@x.com"})

	resp, err := h.HandleUpdateCamp(context.Background(), &UpdateCampRequest{
		ID: "1",
		Body: CampFields{CampName: "Eye Camp v2", CampLocation: "Sylhet", CampTime: camp.CampTime, CampFee: 60, OrganizerEmail: "o@x.com"},
	})
	if err != nil {
		t.Fatalf("HandleUpdateCamp failed: %v", err)
	}
	if resp.Body.CampName != "Eye Camp v2" || resp.Body.CampFee != 60 {
		t.Errorf("camp not replaced: %+v", resp.Body)
	}

	// Upsert against an unused id creates the camp.
	resp, err = h.HandleUpdateCamp(context.Background(), &UpdateCampRequest{
		ID: "9",
		Body: CampFields{CampName: "Fresh Camp", CampLocation: "Dhaka", CampTime: time.Now().Add(time.Hour), OrganizerEmail: "o@x.com"},
	})
	if err != nil {
		t.Fatalf("HandleUpdateCamp upsert failed: %v", err)
	}
	if resp.Body.ID != 9 {
		t.Errorf("expected camp created under id 9, got %d", resp.Body.ID)
	}

	_, err = h.HandleUpdateCamp(context.Background(), &UpdateCampRequest{ID: "x"})
	assertStatus(t, err, http.StatusBadRequest)
}

func TestDeleteCamp(t *testing.T) {
	db := testDB(t)
	h := testCampHandler(t, db)

	addCamp(t, h, CampFields{CampName: "Eye Camp", CampTime: time.Now(), OrganizerEmail: "o@x.com"})

	if _, err := h.HandleDeleteCamp(context.Background(), &DeleteCampRequest{ID: "1"}); err != nil {
		t.Fatalf("HandleDeleteCamp failed: %v", err)
	}

	_, err := h.HandleDeleteCamp(context.Background(), &DeleteCampRequest{ID: "1"})
	assertStatus(t, err, http.StatusNotFound)

	_, err = h.HandleDeleteCamp(context.Background(), &DeleteCampRequest{ID: "zzz"})
	assertStatus(t, err, http.StatusBadRequest)
}

func TestMyAddedCamps(t *testing.T) {
	db := testDB(t)
	h := testCampHandler(t, db)

	addCamp(t, h, CampFields{CampName: "Mine", CampTime: time.Now(), OrganizerEmail: "o1@x.com"})
	addCamp(t, h, CampFields{CampName: "Theirs", CampTime: time.Now(), OrganizerEmail: "o2@x.com"})

	resp, err := h.HandleMyAddedCamps(context.Background(), &OrganizerEmailRequest{Email: "o1@x.com"})
	if err != nil {
		t.Fatalf("HandleMyAddedCamps failed: %v", err)
	}
	if len(resp.Body) != 1 || resp.Body[0].CampName != "Mine" {
		t.Errorf("unexpected camps: %+v", resp.Body)
	}

	count, err := h.HandleMyAddedCampCount(context.Background(), &OrganizerEmailRequest{Email: "o1@x.com"})
	if err != nil {
		t.Fatalf("HandleMyAddedCampCount failed: %v", err)
	}
	if count.Body.Result != 1 {
		t.Errorf("expected count 1, got %d", count.Body.Result)
	}
}

package service

import (
	"context"
	"fmt"

	"masjid/internal/domain"
	"masjid/internal/orgchart"
	"masjid/internal/port"
	"masjid/internal/richtext"
)

// ProfileView is the profile page payload.
type ProfileView struct {
	Detail       domain.ProfileDetail `json:"detail"`
	MissionItems []string             `json:"missionItems"`
	Staff        []domain.Staff       `json:"staff"`
}

// ProfileService defines the mosque profile contract.
type ProfileService interface {
	Profile(ctx context.Context) (*ProfileView, error)
	OrgChart(ctx context.Context, filter string) (*orgchart.OrgChart, error)
}

type profileService struct {
	content port.ContentSource
}

// NewProfileService creates a new ProfileService implementation.
func NewProfileService(content port.ContentSource) ProfileService {
	return &profileService{content: content}
}

func (s *profileService) Profile(ctx context.Context) (*ProfileView, error) {
	profile, err := s.content.Profile(ctx)
	if err != nil {
		return nil, fmt.Errorf("profile.Profile: %w", err)
	}
	staff := profile.Staff
	if staff == nil {
		staff = []domain.Staff{}
	}
	return &ProfileView{
		Detail:       profile.Detail,
		MissionItems: richtext.SplitList(profile.Detail.Mission),
		Staff:        staff,
	}, nil
}

func (s *profileService) OrgChart(ctx context.Context, filter string) (*orgchart.OrgChart, error) {
	profile, err := s.content.Profile(ctx)
	if err != nil {
		return nil, fmt.Errorf("profile.OrgChart: %w", err)
	}
	chart := orgchart.Build(StaffRecords(profile.Staff), filter)
	return &chart, nil
}

// StaffRecords converts roster rows into builder input, keeping order.
func StaffRecords(staff []domain.Staff) []orgchart.StaffRecord {
	records := make([]orgchart.StaffRecord, 0, len(staff))
	for _, st := range staff {
		records = append(records, orgchart.StaffRecord{Name: st.Name, Role: st.Role, ImageURL: st.ImageURL})
	}
	return records
}

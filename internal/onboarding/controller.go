package onboarding

import (
	"context"
	"errors"
	"fmt"
	"log"

	"agrihub/internal/common"
	"agrihub/internal/models"
	"agrihub/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Step is one stage of the signup flow. Steps always complete in
// order: a user can never hold a farm without an organization or an
// organization without a profile.
type Step string

const (
	StepProfile      Step = "profile"
	StepOrganization Step = "organization"
	StepFarm         Step = "farm"
	StepDone         Step = "done"
)

// Status is the probed progress of one user through onboarding.
type Status struct {
	ProfileComplete bool       `json:"profile_complete"`
	OrganizationID  *uuid.UUID `json:"organization_id,omitempty"`
	HasFarm         bool       `json:"has_farm"`
	Next            Step       `json:"next_step"`
}

func (s Status) Done() bool { return s.Next == StepDone }

// CompleteRequest carries everything needed to finish onboarding. On
// resume, fields for already-completed steps are ignored.
type CompleteRequest struct {
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	Phone        *string  `json:"phone,omitempty"`
	Timezone     *string  `json:"timezone,omitempty"`
	Organization string   `json:"organization_name"`
	FarmName     string   `json:"farm_name"`
	FarmLocation *string  `json:"farm_location,omitempty"`
	FarmSize     *float64 `json:"farm_size,omitempty"`
	FarmSizeUnit *string  `json:"farm_size_unit,omitempty"`
	ManagerName  *string  `json:"manager_name,omitempty"`
	ManagerEmail *string  `json:"manager_email,omitempty"`
}

// Controller drives the resumable onboarding flow. Every operation is
// idempotent: probing is read-only and completing writes only the
// steps that are still missing, so a retried or interrupted signup
// always converges on the same end state.
type Controller struct {
	profiles    repositories.ProfileRepository
	orgs        repositories.OrganizationRepository
	memberships repositories.MembershipRepository
	farms       repositories.FarmRepository
}

func NewController(profiles repositories.ProfileRepository, orgs repositories.OrganizationRepository, memberships repositories.MembershipRepository, farms repositories.FarmRepository) *Controller {
	return &Controller{profiles: profiles, orgs: orgs, memberships: memberships, farms: farms}
}

// Probe inspects all three steps and reports the first incomplete one.
// A missing row is progress state, not an error.
func (c *Controller) Probe(ctx context.Context, userID uuid.UUID) (*Status, error) {
	status := &Status{Next: StepDone}

	profile, err := c.profiles.GetByID(ctx, userID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("probe profile: %w", err)
	}
	status.ProfileComplete = profile.Complete()

	membership, err := c.memberships.FirstActiveByUser(ctx, userID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("probe membership: %w", err)
	}
	if membership != nil {
		orgID := membership.OrganizationID
		status.OrganizationID = &orgID

		count, err := c.farms.CountByOrganization(ctx, orgID)
		if err != nil {
			return nil, fmt.Errorf("probe farms: %w", err)
		}
		status.HasFarm = count > 0
	}

	switch {
	case !status.ProfileComplete:
		status.Next = StepProfile
	case status.OrganizationID == nil:
		status.Next = StepOrganization
	case !status.HasFarm:
		status.Next = StepFarm
	}
	return status, nil
}

// Complete finishes onboarding for userID, performing only the steps
// Probe reports as missing, in order. The profile and organization
// steps are fatal on failure. Manager assignment on the new farm and
// the organization's completed flag are best effort.
func (c *Controller) Complete(ctx context.Context, userID uuid.UUID, req CompleteRequest) (*Status, error) {
	status, err := c.Probe(ctx, userID)
	if err != nil {
		return nil, err
	}
	if status.Done() {
		return status, nil
	}

	if !status.ProfileComplete {
		profile := &models.UserProfile{
			ID:        userID,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Phone:     req.Phone,
			Timezone:  req.Timezone,
		}
		if !profile.Complete() {
			return nil, fmt.Errorf("first and last name are required")
		}
		if err := c.profiles.Upsert(ctx, profile); err != nil {
			return nil, fmt.Errorf("save profile: %w", err)
		}
		status.ProfileComplete = true
	}

	if status.OrganizationID == nil {
		if req.Organization == "" {
			return nil, fmt.Errorf("organization name is required")
		}
		org := &models.Organization{
			ID:   uuid.New(),
			Name: req.Organization,
			Slug: common.Slugify(req.Organization),
		}
		if err := c.orgs.Create(ctx, org); err != nil {
			return nil, fmt.Errorf("create organization: %w", err)
		}
		membership := &models.OrganizationMembership{
			ID:             uuid.New(),
			UserID:         userID,
			OrganizationID: org.ID,
			Role:           "owner",
			IsActive:       true,
		}
		// An organization without an owner membership is unreachable
		// by anyone, so this failure aborts the flow.
		if err := c.memberships.Create(ctx, membership); err != nil {
			return nil, fmt.Errorf("create membership: %w", err)
		}
		status.OrganizationID = &org.ID
	}

	if !status.HasFarm {
		if req.FarmName == "" {
			return nil, fmt.Errorf("farm name is required")
		}
		farm := &models.Farm{
			ID:             uuid.New(),
			OrganizationID: *status.OrganizationID,
			Name:           req.FarmName,
			Location:       req.FarmLocation,
			Size:           req.FarmSize,
			SizeUnit:       req.FarmSizeUnit,
			Type:           models.FarmTypeMain,
		}
		if err := c.farms.Create(ctx, farm); err != nil {
			return nil, fmt.Errorf("create farm: %w", err)
		}
		status.HasFarm = true

		if req.ManagerName != nil || req.ManagerEmail != nil {
			farm.ManagerName = req.ManagerName
			farm.ManagerEmail = req.ManagerEmail
			if err := c.farms.Update(ctx, farm); err != nil {
				log.Printf("onboarding: manager assignment failed for farm %s: %v", farm.ID, err)
			}
		}
	}

	if err := c.orgs.SetOnboardingCompleted(ctx, *status.OrganizationID); err != nil {
		log.Printf("onboarding: completed flag not set for organization %s: %v", *status.OrganizationID, err)
	}

	status.Next = StepDone
	return status, nil
}

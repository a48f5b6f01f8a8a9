package coaching

import (
	"context"
	"fmt"

	"fitpulse/models"
	"fitpulse/services/visibility"
	"fitpulse/utils"

	"go.uber.org/zap"
)

// VisibleClients loads the assignment table and client roster and filters them
// through the visibility resolver. professionalID optionally overrides the
// viewer id for the assignment lookup (admin tooling requesting a coach's
// roster on their behalf).
func (s *DefaultCoachingService) VisibleClients(ctx context.Context, viewer models.Viewer, filters models.RosterFilters, professionalID string) ([]models.RosterRecord, error) {
	logger := utils.GetLogger()

	assignments, err := s.AssignmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("coaching: failed to load assignments: %w", err)
	}

	clients, err := s.UserRepo.GetAllByRole(ctx, models.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("coaching: failed to load clients: %w", err)
	}

	roster := make([]models.RosterRecord, 0, len(clients))
	for _, client := range clients {
		roster = append(roster, models.RosterRecordFromUser(client))
	}

	visible := visibility.ResolveVisibleClientsAs(viewer, assignments, roster, filters, professionalID)
	logger.Debug("VisibleClients resolved",
		zap.String("viewerID", viewer.ID),
		zap.String("viewerRole", string(viewer.Role)),
		zap.Int("total", len(roster)),
		zap.Int("visible", len(visible)))
	return visible, nil
}

// AssignClient adds a client to a professional's roster mapping.
func (s *DefaultCoachingService) AssignClient(ctx context.Context, professionalID, clientID string) error {
	if err := s.AssignmentRepo.AddClient(ctx, professionalID, clientID); err != nil {
		return fmt.Errorf("coaching: failed to assign client: %w", err)
	}
	return nil
}

// UnassignClient removes a client from a professional's roster mapping.
func (s *DefaultCoachingService) UnassignClient(ctx context.Context, professionalID, clientID string) error {
	if err := s.AssignmentRepo.RemoveClient(ctx, professionalID, clientID); err != nil {
		return fmt.Errorf("coaching: failed to unassign client: %w", err)
	}
	return nil
}

// Roster returns the professional's assignment mapping, empty when the
// professional has no clients yet.
func (s *DefaultCoachingService) Roster(ctx context.Context, professionalID string) (*models.Assignment, error) {
	assignment, err := s.AssignmentRepo.GetByProfessionalID(ctx, professionalID)
	if err != nil {
		return nil, fmt.Errorf("coaching: failed to load assignment: %w", err)
	}
	if assignment == nil {
		return &models.Assignment{ProfessionalID: professionalID, ClientIDs: []string{}}, nil
	}
	return assignment, nil
}

// ReplaceRoster swaps the professional's client list wholesale, creating the
// mapping when absent.
func (s *DefaultCoachingService) ReplaceRoster(ctx context.Context, professionalID string, clientIDs []string) (*models.Assignment, error) {
	if clientIDs == nil {
		clientIDs = []string{}
	}
	assignment := models.Assignment{ProfessionalID: professionalID, ClientIDs: clientIDs}
	if err := s.AssignmentRepo.Upsert(ctx, assignment); err != nil {
		return nil, fmt.Errorf("coaching: failed to replace roster: %w", err)
	}

	utils.GetLogger().Info("roster replaced",
		zap.String("professionalID", professionalID),
		zap.Int("clients", len(clientIDs)))
	return &assignment, nil
}

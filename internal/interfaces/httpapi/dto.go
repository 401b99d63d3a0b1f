package httpapi

import (
	"time"

	"github.com/riskibarqy/youth-league/internal/domain/draft"
	"github.com/riskibarqy/youth-league/internal/domain/player"
	"github.com/riskibarqy/youth-league/internal/domain/volunteer"
	"github.com/riskibarqy/youth-league/internal/usecase"
)

type managerSetupRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	TeamID string `json:"team_id" validate:"omitempty,max=64"`
}

type startDraftRequest struct {
	Managers []managerSetupRequest `json:"managers" validate:"required,min=1,dive"`
}

type pickRequest struct {
	ManagerID string `json:"manager_id" validate:"required"`
	// Player is a player id, a draft number or a full name.
	Player string `json:"player" validate:"required,max=200"`
}

type assignVolunteerRequest struct {
	VolunteerID string `json:"volunteer_id" validate:"required"`
	Role        string `json:"role" validate:"required"`
}

type declineVolunteerRequest struct {
	VolunteerID string `json:"volunteer_id" validate:"required"`
}

type movePlayerRequest struct {
	FromManagerID string `json:"from_manager_id" validate:"required"`
	ToManagerID   string `json:"to_manager_id" validate:"required,nefield=FromManagerID"`
	PlayerID      string `json:"player_id" validate:"required"`
}

type volunteerAssignmentRequest struct {
	VolunteerID string `json:"volunteer_id" validate:"required"`
	Role        string `json:"role" validate:"required"`
}

type resolveMoveRequest struct {
	Cancel      bool                         `json:"cancel"`
	UnassignAll bool                         `json:"unassign_all"`
	Assignments []volunteerAssignmentRequest `json:"assignments" validate:"omitempty,dive"`
}

type bindTeamRequest struct {
	TeamID string `json:"team_id" validate:"required"`
}

type volunteerDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	DeclaredRole string `json:"declared_role,omitempty"`
	DerivedRole  string `json:"derived_role,omitempty"`
	OfferedSlot  string `json:"offered_slot,omitempty"`
}

type playerDTO struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	DraftNumber  int            `json:"draft_number"`
	FamilyID     string         `json:"family_id,omitempty"`
	Gender       string         `json:"gender,omitempty"`
	BirthDate    string         `json:"birth_date,omitempty"`
	TravelPlayer bool           `json:"travel_player"`
	Returning    bool           `json:"returning"`
	Volunteers   []volunteerDTO `json:"volunteers"`
}

type pickDTO struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	ManagerID  string `json:"manager_id"`
	Number     int    `json:"number"`
	Round      int    `json:"round"`
	Sibling    bool   `json:"sibling"`
	PickedAt   string `json:"picked_at"`
}

type slotsDTO struct {
	Manager          *volunteerDTO  `json:"manager,omitempty"`
	TeamParent       *volunteerDTO  `json:"team_parent,omitempty"`
	AssistantCoaches []volunteerDTO `json:"assistant_coaches"`
}

type managerDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SetupName string    `json:"setup_name"`
	TeamID    string    `json:"team_id,omitempty"`
	Picks     []pickDTO `json:"picks"`
	Slots     slotsDTO  `json:"slots"`
}

type boardCellDTO struct {
	ManagerID string    `json:"manager_id"`
	Pick      pickDTO   `json:"pick"`
	Siblings  []pickDTO `json:"siblings,omitempty"`
}

type boardRoundDTO struct {
	Round int            `json:"round"`
	Cells []boardCellDTO `json:"cells"`
}

type assignmentDTO struct {
	PlayerID  string         `json:"player_id"`
	ManagerID string         `json:"manager_id"`
	Pending   []volunteerDTO `json:"pending"`
}

type slotHoldingDTO struct {
	Volunteer volunteerDTO `json:"volunteer"`
	Role      string       `json:"role"`
}

type pendingMoveDTO struct {
	PlayerID      string           `json:"player_id"`
	FromManagerID string           `json:"from_manager_id"`
	ToManagerID   string           `json:"to_manager_id"`
	Occupied      []slotHoldingDTO `json:"occupied"`
}

type teamDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ManagerName string `json:"manager_name,omitempty"`
}

type sessionDTO struct {
	DivisionID  string          `json:"division_id"`
	SeasonID    string          `json:"season_id"`
	Status      string          `json:"status"`
	Round       int             `json:"round"`
	NextPick    int             `json:"next_pick"`
	Waiting     []string        `json:"waiting"`
	Teams       []teamDTO       `json:"teams"`
	Pool        []playerDTO     `json:"pool"`
	Managers    []managerDTO    `json:"managers"`
	Board       []boardRoundDTO `json:"board"`
	QueueHead   *assignmentDTO  `json:"queue_head,omitempty"`
	QueueLength int             `json:"queue_length"`
	PendingMove *pendingMoveDTO `json:"pending_move,omitempty"`
	CommittedAt string          `json:"committed_at,omitempty"`
}

type eventDTO struct {
	Type        string   `json:"type"`
	ManagerID   string   `json:"manager_id,omitempty"`
	ToManagerID string   `json:"to_manager_id,omitempty"`
	PlayerID    string   `json:"player_id,omitempty"`
	PlayerIDs   []string `json:"player_ids,omitempty"`
	VolunteerID string   `json:"volunteer_id,omitempty"`
	Role        string   `json:"role,omitempty"`
	Round       int      `json:"round,omitempty"`
	TeamID      string   `json:"team_id,omitempty"`
}

type commitReportDTO struct {
	Committed []string `json:"committed"`
	Skipped   []string `json:"skipped"`
}

type commandResultDTO struct {
	Session sessionDTO       `json:"session"`
	Events  []eventDTO       `json:"events"`
	Commit  *commitReportDTO `json:"commit,omitempty"`
}

type orderEntryDTO struct {
	Position    int    `json:"position"`
	ManagerID   string `json:"manager_id"`
	ManagerName string `json:"manager_name"`
}

type roundOrderDTO struct {
	Round    int             `json:"round"`
	Managers []orderEntryDTO `json:"managers"`
}

func resultToDTO(result usecase.DraftResult) commandResultDTO {
	out := commandResultDTO{
		Session: sessionToDTO(result.State),
		Events:  eventsToDTO(result.Events),
	}
	if result.Commit != nil {
		out.Commit = &commitReportDTO{
			Committed: nonNil(result.Commit.Committed),
			Skipped:   nonNil(result.Commit.Skipped),
		}
	}
	return out
}

func sessionToDTO(s draft.State) sessionDTO {
	out := sessionDTO{
		DivisionID:  s.DivisionID,
		SeasonID:    s.SeasonID,
		Status:      string(s.Status),
		Round:       s.Round,
		NextPick:    s.NextPick,
		Waiting:     []string{},
		Teams:       make([]teamDTO, 0, len(s.Teams)),
		Pool:        make([]playerDTO, 0, len(s.Pool)),
		Managers:    make([]managerDTO, 0, len(s.Managers)),
		Board:       make([]boardRoundDTO, 0, len(s.Board.Rounds)),
		QueueLength: len(s.Queue),
	}
	if s.Status == draft.StatusInProgress {
		out.Waiting = s.Waiting(s.Round)
	}
	for _, t := range s.Teams {
		out.Teams = append(out.Teams, teamDTO{ID: t.ID, Name: t.Name, ManagerName: t.ManagerName})
	}
	for _, p := range s.Pool {
		out.Pool = append(out.Pool, playerToDTO(p))
	}
	for _, m := range s.Managers {
		out.Managers = append(out.Managers, managerToDTO(m))
	}

	order := s.ManagerIDs()
	for _, r := range s.Board.Rounds {
		round := boardRoundDTO{Round: r.Number, Cells: make([]boardCellDTO, 0, len(r.Cells))}
		for _, id := range order {
			cell, ok := r.Cells[id]
			if !ok || cell == nil {
				continue
			}
			round.Cells = append(round.Cells, boardCellDTO{
				ManagerID: id,
				Pick:      pickToDTO(cell.Pick),
				Siblings:  picksToDTO(cell.Siblings),
			})
		}
		out.Board = append(out.Board, round)
	}

	if head, ok := s.HeadAssignment(); ok {
		out.QueueHead = &assignmentDTO{
			PlayerID:  head.PlayerID,
			ManagerID: head.ManagerID,
			Pending:   volunteersToDTO(head.Pending),
		}
	}
	if pm := s.PendingMove; pm != nil {
		move := &pendingMoveDTO{
			PlayerID:      pm.PlayerID,
			FromManagerID: pm.FromManagerID,
			ToManagerID:   pm.ToManagerID,
			Occupied:      make([]slotHoldingDTO, 0, len(pm.Occupied)),
		}
		for _, o := range pm.Occupied {
			move.Occupied = append(move.Occupied, slotHoldingDTO{Volunteer: volunteerToDTO(o.Volunteer), Role: string(o.Role)})
		}
		out.PendingMove = move
	}
	if s.CommittedAt != nil {
		out.CommittedAt = s.CommittedAt.UTC().Format(time.RFC3339)
	}
	return out
}

func managerToDTO(m draft.Manager) managerDTO {
	out := managerDTO{
		ID:        m.ID,
		Name:      m.Name,
		SetupName: m.SetupName,
		TeamID:    m.TeamID,
		Picks:     picksToDTO(m.Picks),
		Slots:     slotsDTO{AssistantCoaches: volunteersToDTO(m.Slots.AssistantCoaches)},
	}
	if m.Slots.Manager != nil {
		v := volunteerToDTO(*m.Slots.Manager)
		out.Slots.Manager = &v
	}
	if m.Slots.TeamParent != nil {
		v := volunteerToDTO(*m.Slots.TeamParent)
		out.Slots.TeamParent = &v
	}
	return out
}

func playerToDTO(p player.Player) playerDTO {
	out := playerDTO{
		ID:           p.ID,
		Name:         p.Name(),
		DraftNumber:  p.DraftNumber,
		FamilyID:     p.FamilyID,
		Gender:       string(p.Gender),
		TravelPlayer: p.TravelPlayer,
		Returning:    p.Returning,
		Volunteers:   volunteersToDTO(p.Volunteers),
	}
	if !p.BirthDate.IsZero() {
		out.BirthDate = p.BirthDate.Format(time.DateOnly)
	}
	return out
}

func pickToDTO(p draft.Pick) pickDTO {
	out := pickDTO{
		PlayerID:   p.PlayerID,
		PlayerName: p.Player.Name(),
		ManagerID:  p.ManagerID,
		Number:     p.Number,
		Round:      p.Round,
		Sibling:    p.Sibling,
	}
	if !p.PickedAt.IsZero() {
		out.PickedAt = p.PickedAt.UTC().Format(time.RFC3339)
	}
	return out
}

func picksToDTO(picks []draft.Pick) []pickDTO {
	out := make([]pickDTO, 0, len(picks))
	for _, p := range picks {
		out = append(out, pickToDTO(p))
	}
	return out
}

func volunteerToDTO(v volunteer.Volunteer) volunteerDTO {
	out := volunteerDTO{
		ID:           v.ID,
		Name:         v.Name,
		Email:        v.Email,
		Phone:        v.Phone,
		DeclaredRole: string(v.DeclaredRole),
		DerivedRole:  string(v.DerivedRole),
	}
	if slot, ok := v.Offer(); ok {
		out.OfferedSlot = string(slot)
	}
	return out
}

func volunteersToDTO(items []volunteer.Volunteer) []volunteerDTO {
	out := make([]volunteerDTO, 0, len(items))
	for _, v := range items {
		out = append(out, volunteerToDTO(v))
	}
	return out
}

func eventsToDTO(events []draft.Event) []eventDTO {
	out := make([]eventDTO, 0, len(events))
	for _, e := range events {
		out = append(out, eventDTO{
			Type:        string(e.Type),
			ManagerID:   e.ManagerID,
			ToManagerID: e.ToManagerID,
			PlayerID:    e.PlayerID,
			PlayerIDs:   e.PlayerIDs,
			VolunteerID: e.VolunteerID,
			Role:        string(e.Role),
			Round:       e.Round,
			TeamID:      e.TeamID,
		})
	}
	return out
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

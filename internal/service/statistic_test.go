package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/openroster/roster-stats-service/internal/model"
	"github.com/openroster/roster-stats-service/internal/repository"
	"github.com/openroster/roster-stats-service/internal/service"
)

func validStatisticInput(teamPlayerID int64) model.StatisticInput {
	return model.StatisticInput{
		TeamPlayerID:  teamPlayerID,
		GameDate:      testNow.AddDate(0, 0, -7),
		MinutesPlayed: 90,
		IsStarter:     true,
		JerseyNumber:  10,
		Goals:         2,
		Assists:       1,
	}
}

func newStatisticFixture(t *testing.T) (service.StatisticService, *fakeStatisticRepo, model.Player, model.TeamPlayer) {
	t.Helper()
	players := newFakePlayerRepo()
	teamPlayers := newFakeTeamPlayerRepo()
	statistics := newFakeStatisticRepo()

	p := seedPlayer(t, players)
	tp, err := teamPlayers.Create(context.Background(), model.TeamPlayer{
		PlayerID: p.ID, TeamName: "Alpha", ChampionshipName: "2024", JoinedDate: testNow.AddDate(0, -6, 0),
	})
	if err != nil {
		t.Fatalf("seed team player: %v", err)
	}
	statistics.memberships[tp.ID] = p.ID

	svc := service.NewStatisticService(statistics, teamPlayers, players, testClock(), discardLogger())
	return svc, statistics, p, tp
}

func TestStatisticService_CreateStatistic(t *testing.T) {
	svc, _, _, tp := newStatisticFixture(t)

	out, err := svc.CreateStatistic(context.Background(), validStatisticInput(tp.ID), "scorer-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ID == 0 || out.CreatedBy != "scorer-1" || out.CreatedAt != testNow {
		t.Fatalf("created audit not stamped: %+v", out)
	}
	if out.Goals != 2 || out.Assists != 1 || out.MinutesPlayed != 90 || !out.IsStarter || out.JerseyNumber != 10 {
		t.Fatalf("fields not preserved: %+v", out)
	}
}

func TestStatisticService_CreateStatistic_TeamPlayerMissing(t *testing.T) {
	svc, _, _, _ := newStatisticFixture(t)
	_, err := svc.CreateStatistic(context.Background(), validStatisticInput(99), "scorer-1")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestStatisticService_CreateStatistic_Validation(t *testing.T) {
	svc, repo, _, tp := newStatisticFixture(t)
	in := validStatisticInput(tp.ID)
	in.MinutesPlayed = 200
	in.JerseyNumber = 0
	_, err := svc.CreateStatistic(context.Background(), in, "scorer-1")
	if !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("want invalid input, got %v", err)
	}
	if !fieldReported(err, "minutes_played") || !fieldReported(err, "jersey_number") {
		t.Fatalf("all violated fields must be reported: %v", service.FieldErrors(err))
	}
	if len(repo.items) != 0 {
		t.Fatalf("storage must not be touched on validation failure")
	}
}

func TestStatisticService_UpdateStatistic(t *testing.T) {
	svc, _, _, tp := newStatisticFixture(t)
	created, err := svc.CreateStatistic(context.Background(), validStatisticInput(tp.ID), "scorer-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := validStatisticInput(tp.ID)
	in.StatisticID = created.ID
	in.Goals = 3
	out, err := svc.UpdateStatistic(context.Background(), created.ID, in, "scorer-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Goals != 3 {
		t.Fatalf("field not replaced")
	}
	if out.CreatedAt != created.CreatedAt || out.CreatedBy != "scorer-1" {
		t.Fatalf("created audit must be carried over")
	}
	if out.UpdatedBy != "scorer-2" || out.UpdatedAt.Before(out.CreatedAt) {
		t.Fatalf("audit timestamps must be non-decreasing: %+v", out.Audit)
	}
}

func TestStatisticService_UpdateStatistic_IDMismatch(t *testing.T) {
	svc, repo, _, tp := newStatisticFixture(t)
	created, err := svc.CreateStatistic(context.Background(), validStatisticInput(tp.ID), "scorer-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := validStatisticInput(tp.ID)
	in.StatisticID = created.ID + 1
	_, err = svc.UpdateStatistic(context.Background(), created.ID, in, "scorer-1")
	if !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("want invalid input, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Fatalf("storage must not be touched on id mismatch")
	}
}

func TestStatisticService_DeleteAndGet(t *testing.T) {
	svc, _, _, tp := newStatisticFixture(t)
	created, err := svc.CreateStatistic(context.Background(), validStatisticInput(tp.ID), "scorer-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.GetStatistic(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.DeleteStatistic(context.Background(), created.ID, "scorer-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GetStatistic(context.Background(), created.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("want not found after delete, got %v", err)
	}
}

func TestStatisticService_GetPlayerAggregates(t *testing.T) {
	svc, _, p, tp := newStatisticFixture(t)

	seed := []struct{ goals, assists, minutes int }{
		{2, 1, 90}, {1, 2, 90}, {0, 3, 90},
	}
	for _, s := range seed {
		in := validStatisticInput(tp.ID)
		in.Goals, in.Assists, in.MinutesPlayed = s.goals, s.assists, s.minutes
		if _, err := svc.CreateStatistic(context.Background(), in, "scorer-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	agg, err := svc.GetPlayerAggregates(context.Background(), p.ID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := model.PlayerAggregates{
		GameCount: 3, TotalGoals: 3, TotalAssists: 6, TotalMinutes: 270,
		AvgGoals: 1.0, AvgAssists: 2.0, AvgMinutes: 90.0,
	}
	if agg != want {
		t.Fatalf("aggregates mismatch:\n got %+v\nwant %+v", agg, want)
	}

	scoped, err := svc.GetPlayerAggregates(context.Background(), p.ID, &tp.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scoped != want {
		t.Fatalf("scoped aggregates mismatch: %+v", scoped)
	}
}

func TestStatisticService_GetPlayerAggregates_PlayerMissing(t *testing.T) {
	svc, _, _, _ := newStatisticFixture(t)
	_, err := svc.GetPlayerAggregates(context.Background(), 404, nil)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestStatisticService_ListStatisticsByDateRange_Validation(t *testing.T) {
	svc, _, _, tp := newStatisticFixture(t)
	_, err := svc.ListStatisticsByDateRange(context.Background(), tp.ID, testNow, testNow.AddDate(0, 0, -1))
	if !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("inverted range must be invalid, got %v", err)
	}
}

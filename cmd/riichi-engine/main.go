// Command riichi-engine wires the rules engine to its ambient stack and
// plays one automated game, useful as a smoke test and as a reference
// for embedding the engine in a real transport. Grounded on the
// teacher's hall/main.go (InitLog → load config → run), trimmed of
// cobra subcommand routing and the metrics HTTP server since this
// binary has exactly one mode and no fleet of node types to distinguish
// by flag.
package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"riichi/config"
	"riichi/eventbus"
	"riichi/log"
	"riichi/mahjong/action"
	"riichi/mahjong/round"
	"riichi/mahjong/tile"
	"riichi/mahjong/wall"
	"riichi/persistence"
	mongopersist "riichi/persistence/mongo"
)

var configFile = flag.String("config", "resource/application.yml", "path to the engine's config file")

func main() {
	flag.Parse()

	if err := config.Load(*configFile, nil); err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	cfg := config.Current()
	log.Init("riichi-engine", cfg.Log.Level)

	tableID := uuid.New().String()
	log.Info("starting table %s with %d players", tableID, cfg.Game.NumPlayers)

	var repo *mongopersist.Manager
	if cfg.Mongo.URL != "" {
		m, err := mongopersist.Connect(cfg.Mongo)
		if err != nil {
			log.Warn("mongo unavailable, running without persistence: %v", err)
		} else {
			repo = m
			defer repo.Close()
		}
	}

	var bus *eventbus.Publisher
	if cfg.Nats.URL != "" {
		p, err := eventbus.Connect(cfg.Nats.URL, cfg.Nats.Subject)
		if err != nil {
			log.Warn("nats unavailable, running without event publishing: %v", err)
		} else {
			bus = p
			defer bus.Close()
		}
	}

	var rec *persistence.Recorder
	if repo != nil {
		rec = persistence.NewRecorder(repo, tableID, cfg.Game.NumPlayers)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if err := playOneGame(rng, cfg, rec, bus); err != nil {
		log.Error("game failed: %v", err)
		os.Exit(1)
	}
}

// playOneGame runs a single round with a trivial always-discard-the-
// drawn-tile policy until the wall runs dry, demonstrating the full event ->
// persistence -> publish pipeline without a real player-facing decision
// loop (that belongs to whatever transport sits in front of this
// engine).
func playOneGame(rng *rand.Rand, cfg config.Config, rec *persistence.Recorder, bus *eventbus.Publisher) error {
	w := wall.New(wall.Config{NumPlayers: cfg.Game.NumPlayers, RedFives: cfg.Game.RedFives}, rng)
	r := round.New(w, 0, 0, 0, tile.East, cfg.Game.NumPlayers, cfg.Game.StartingScore)

	if rec != nil {
		rec.StartRound(1, tile.East.String(), r.DealerIndex, r.Honba)
	}

	if err := r.Deal(); err != nil {
		return err
	}

	for !r.Finished {
		choices, err := r.DrawCurrent()
		if err != nil {
			return err
		}
		if r.Finished {
			break
		}

		discarded := false
		for _, c := range choices {
			if c.Kind != action.Discard {
				continue
			}
			seat := r.Seats[r.Current]
			if seat.Hand.Drawn == nil {
				break
			}
			if err := r.Discard(*seat.Hand.Drawn); err != nil {
				return err
			}
			discarded = true
			break
		}
		if !discarded {
			break
		}

		flushEvents(r, rec, bus)
	}

	flushEvents(r, rec, bus)

	if rec != nil {
		scores := make([]int, len(r.Seats))
		for i, s := range r.Seats {
			scores[i] = s.Score
		}
		return rec.Finalize(context.Background(), scores)
	}
	return nil
}

func flushEvents(r *round.Round, rec *persistence.Recorder, bus *eventbus.Publisher) {
	for _, ev := range r.Events {
		if rec != nil {
			rec.Record(ev)
		}
		if bus != nil {
			bus.Publish(ev)
		}
	}
	r.Events = r.Events[:0]
}

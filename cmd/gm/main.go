package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"werewolfgm/internal/config"
	"werewolfgm/internal/event"
	"werewolfgm/internal/game"
	"werewolfgm/internal/gamelog"
	"werewolfgm/internal/logger"
	"werewolfgm/internal/store"
)

func main() {
	cfg, err := config.LoadConfig("")
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	zlog, err := logger.New(cfg.App.LogLevel, cfg.App.LogFormat)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer zlog.Sync()

	if err := os.MkdirAll(cfg.App.DataDir, 0o755); err != nil {
		zlog.Fatalw("failed to create data directory", "dir", cfg.App.DataDir, "error", err)
	}

	var gameStore store.Store
	gameStore, err = store.OpenSQLite(filepath.Join(cfg.App.DataDir, "game.db"))
	if err != nil {
		zlog.Warnw("sqlite unavailable, falling back to in-memory store", "error", err)
		gameStore = store.NewMemoryStore()
	}
	defer gameStore.Close()

	regulations := store.NewRegulationFile(filepath.Join(cfg.App.DataDir, "regulations.yaml"))

	bus := event.NewBus(zlog)
	glog := gamelog.New(bus)
	defer glog.Close()

	state := game.New(bus, zlog)

	fmt.Println("Werewolf GM console. Type 'help' for commands.")
	console(state, cfg, gameStore, regulations, glog)
}

func console(state *game.GameState, cfg *config.Config, gameStore store.Store, regulations *store.RegulationFile, glog *gamelog.Log) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("[round %d, %s] > ", state.Round(), state.Phase().DisplayName())
		if !scanner.Scan() {
			return
		}
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "help":
			printHelp()
		case "add":
			if len(args) != 3 {
				fmt.Println("usage: add <number> <name>")
				continue
			}
			number, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Println("seat number must be an integer")
				continue
			}
			if _, err := state.AddPlayer(number, args[2]); err != nil {
				fmt.Println("error:", err)
			}
		case "remove":
			if len(args) != 2 {
				fmt.Println("usage: remove <name>")
				continue
			}
			if err := state.RemovePlayer(args[1]); err != nil {
				fmt.Println("error:", err)
			}
		case "preset":
			if len(args) != 2 {
				fmt.Println("usage: preset <name>")
				continue
			}
			preset, ok := cfg.GetPreset(args[1])
			if !ok {
				fmt.Println("unknown preset:", args[1])
				continue
			}
			reg, err := preset.Regulation()
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			if err := state.SetRegulation(reg); err != nil {
				fmt.Println("error:", err)
			}
		case "regulation":
			handleRegulation(args[1:], state, regulations)
		case "start":
			if err := state.StartGame(); err != nil {
				fmt.Println("error:", err)
			}
		case "phase":
			if len(args) != 2 {
				fmt.Println("usage: phase <day_discussion|day_vote|night>")
				continue
			}
			if err := state.ChangePhase(game.Phase(args[1])); err != nil {
				fmt.Println("error:", err)
			}
		case "round":
			if err := state.NextRound(); err != nil {
				fmt.Println("error:", err)
			}
		case "kill":
			if len(args) != 2 {
				fmt.Println("usage: kill <name>")
				continue
			}
			if err := state.KillPlayer(args[1]); err != nil {
				fmt.Println("error:", err)
			}
		case "status":
			printStatus(state)
		case "log":
			fmt.Print(glog.String())
		case "save":
			if err := gameStore.SaveSnapshot(state.Save()); err != nil {
				fmt.Println("error:", err)
			} else {
				fmt.Println("game saved")
			}
		case "load":
			snap, err := gameStore.LoadSnapshot()
			if errors.Is(err, store.ErrNoSnapshot) {
				fmt.Println("nothing saved yet")
				continue
			}
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			state.Restore(snap)
			fmt.Println("game restored")
		case "reset":
			state.Reset()
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command:", args[0])
		}
	}
}

func handleRegulation(args []string, state *game.GameState, regulations *store.RegulationFile) {
	if len(args) == 0 {
		fmt.Println("usage: regulation save <name> | regulation load <name> | regulation list")
		return
	}
	switch args[0] {
	case "save":
		if len(args) != 2 {
			fmt.Println("usage: regulation save <name>")
			return
		}
		reg, ok := state.Regulation()
		if !ok {
			fmt.Println("no regulation set")
			return
		}
		if err := regulations.Save(args[1], reg); err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println("regulation saved as", args[1])
	case "load":
		if len(args) != 2 {
			fmt.Println("usage: regulation load <name>")
			return
		}
		all, err := regulations.Load()
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		reg, ok := all[args[1]]
		if !ok {
			fmt.Println("no saved regulation named", args[1])
			return
		}
		if err := state.SetRegulation(reg); err != nil {
			fmt.Println("error:", err)
		}
	case "list":
		all, err := regulations.Load()
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		if len(all) == 0 {
			fmt.Println("no saved regulations")
			return
		}
		for name, reg := range all {
			fmt.Printf("  %s (%d players)\n", name, reg.TotalPlayers())
		}
	default:
		fmt.Println("usage: regulation save <name> | regulation load <name> | regulation list")
	}
}

func printStatus(state *game.GameState) {
	fmt.Printf("phase: %s  round: %d  active: %v\n", state.Phase().DisplayName(), state.Round(), state.Active())
	counts := state.TeamCounts()
	fmt.Printf("alive: village %d, werewolf %d\n", counts[game.TeamVillage], counts[game.TeamWerewolf])
	for _, p := range state.Players() {
		fmt.Println("  " + p.String())
	}
}

func printHelp() {
	fmt.Println(`commands:
  add <number> <name>      register a player
  remove <name>            unregister a player (setup only)
  preset <name>            apply a configured regulation preset
  regulation save|load|list
  start                    deal roles and start the game
  phase <name>             move to the named phase
  round                    advance to the next round
  kill <name>              mark a player dead
  status                   show the current game state
  log                      show the game log
  save / load              checkpoint via the store
  reset                    back to setup
  quit`)
}

// Command simulate plays a session headlessly with scripted input and
// prints how it ended.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/milk9111/pollo/component"
	"github.com/milk9111/pollo/prefabs"
	"github.com/milk9111/pollo/system"
)

const defaultScript = "R:1500ms,RJ:300ms,R:1s,T:150ms,-:50ms"

func main() {
	seed := flag.Int64("seed", 1, "level seed")
	duration := flag.Duration("duration", 3*time.Minute, "game time to simulate before giving up")
	script := flag.String("script", defaultScript, "looping input script, e.g. R:2s,RJ:300ms,T:100ms")
	prefabDir := flag.String("prefabs", "prefabs", "directory checked for prefab overrides")
	events := flag.Bool("events", false, "print every game event")
	flag.Parse()

	prefabs.Dir = *prefabDir
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Fatal(err)
	}
	sc, err := ParseScript(*script)
	if err != nil {
		log.Fatal(err)
	}

	res, err := run(tuning, sc, *seed, *duration, *events)
	if err != nil {
		log.Fatal(err)
	}
	printResult(res)
	if res.Outcome == system.Running {
		os.Exit(2)
	}
}

func run(tuning *prefabs.Tuning, sc *Script, seed int64, limit time.Duration, printEvents bool) (system.Result, error) {
	var (
		done   bool
		result system.Result
	)
	finish := func(r system.Result) {
		done = true
		result = r
	}

	var handlers []component.GameEventHandler
	if printEvents {
		handlers = append(handlers, func(evt component.GameEvent) {
			fmt.Printf("%10s  %-18s %-12s %d\n", evt.At, evt.Type, evt.Kind, evt.Amount)
		})
	}

	w, err := system.NewWorld(system.Options{
		Tuning:   tuning,
		Keyboard: sc,
		Rand:     rand.New(rand.NewSource(seed)),
		Hooks:    system.Hooks{OnWin: finish, OnLose: finish},
		Events:   handlers,
	})
	if err != nil {
		return system.Result{}, err
	}
	sc.now = w.Now
	defer w.Close()

	tick := time.Second / 60
	if tuning.World.TickRate > 0 {
		tick = time.Second / time.Duration(tuning.World.TickRate)
	}
	for !done && w.Now() < limit {
		w.Update(tick)
	}
	if !done {
		return w.Result(), nil
	}
	return result, nil
}

func printResult(r system.Result) {
	fmt.Printf("session  %s\n", r.Session)
	fmt.Printf("outcome  %s\n", r.Outcome)
	fmt.Printf("elapsed  %s\n", r.Elapsed)
	fmt.Printf("coins    %d\n", r.Coins)
	fmt.Printf("bottles  %d\n", r.Bottles)
	fmt.Printf("energy   %d\n", r.Energy)
	fmt.Printf("enemies  %d left\n", r.EnemiesLeft)
}

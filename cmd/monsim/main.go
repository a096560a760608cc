package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chrisaacson69/monopoly/platform/engine"
	"github.com/chrisaacson69/monopoly/platform/logging"
	log "github.com/sirupsen/logrus"
)

func main() {
	logging.Init()

	rolls := flag.Int64("n", 0, "rolls to simulate per strategy (prompts when omitted)")
	seed := flag.Int64("seed", 0, "random seed, 0 takes the clock")
	flag.Parse()

	if *rolls == 0 {
		*rolls = promptRolls()
	}
	if *rolls <= 0 {
		log.WithField("rolls", *rolls).Fatal("roll count must be positive")
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	start := time.Now()
	short, long := engine.RunPolicies(*rolls, *seed, *rolls/10, func(leaveJail int, done, total int64) {
		log.WithFields(log.Fields{
			"strategy": engine.StrategyName(leaveJail),
			"done":     done,
			"total":    total,
		}).Debug("simulating")
	})

	fmt.Println(short.Text())
	fmt.Println(long.Text())

	log.WithFields(log.Fields{"rolls": *rolls, "took": time.Since(start)}).Info("simulation finished")
}

func promptRolls() int64 {
	fmt.Println("Enter number of rolls to simulate:")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		log.Fatal("no roll count supplied")
	}
	n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		log.WithField("input", strings.TrimSpace(line)).Fatal("roll count must be a number")
	}
	return n
}

// trace samples the motion evaluator over a time range and prints CSV,
// for tuning jump constants without opening a window.
package main

import (
	"flag"
	"fmt"

	"github.com/milk9111/hurdles/motion"
	"github.com/milk9111/hurdles/scene"
)

func main() {
	duration := flag.Float64("d", 12.0, "seconds to sample")
	step := flag.Float64("step", 1.0/60.0, "sample step in seconds")
	index := flag.Int("i", -1, "moving index to trace (-1 = all)")
	flag.Parse()

	sc := scene.Build()
	params := motion.DefaultParams()
	params.Obstacles = sc.ObstacleXs()

	fmt.Println("index,time,x,y")
	for t := 0.0; t <= *duration; t += *step {
		for i := 0; i < sc.MovingCount(); i++ {
			if *index >= 0 && i != *index {
				continue
			}
			pos := params.PositionAt(i, t)
			fmt.Printf("%d,%.4f,%.5f,%.5f\n", i, t, pos.X, pos.Y)
		}
	}
}

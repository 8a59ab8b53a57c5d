// Command arbsample draws values from the arb generators and prints them.
//
// Usage
//
//	arbsample shapes
//	arbsample sample --shape nonempty-int --size 5 --count 3 --json
//	arbsample stats --shape string --size 20 --count 1000
//
// Every run is driven by one seeded handle. With --seed 0 (the default) a
// clock seed is chosen and logged at info level so the run can be replayed.
// The default log level comes from ARBSAMPLE_LOG_LEVEL.
package main

package tz

import "time"

// Central is the US/Central location (CST/CDT with automatic DST).
var Central *time.Location

func init() {
	var err error
	Central, err = time.LoadLocation("US/Central")
	if err != nil {
		panic("tz: load US/Central: " + err.Error())
	}
}

package tools

import (
	"fmt"
	"log"
	"time"

	"github.com/golang/glog"
)

var isEnabled = true
var printTimestamp = true

func EnableLogger() {
	isEnabled = true
}

func DisableLogger() {
	isEnabled = false
}

func EnableLoggerTimestamp() {
	printTimestamp = true
}

func DisableLoggerTimestamp() {
	printTimestamp = false
}

// LogOutput prints a progress message on the console unless the logger is disabled. Every message is
// also recorded by glog.
func LogOutput(val ...interface{}) {
	glog.InfoDepth(1, fmt.Sprintln(val...))
	if !isEnabled {
		return
	}
	if printTimestamp {
		log.Println(append([]interface{}{"[" + time.Now().Format("2006-01-02 15.04:05.000") + "]"}, val...)...)
		return
	}
	log.Println(val...)
}

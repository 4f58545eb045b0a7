package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/fixstr"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1
	region := make([]byte, 64)
	s := fixstr.New(region)
	for i := 0; i < 10000; i++ {
		s.Clear()
		_ = s.PushString("Hello world!")
		_ = s.Push(' ')
		_ = s.PushString("héllo 語")
		s.Pop()
		tail := s.SplitOff(5)
		_ = tail.Len()
		s = fixstr.New(region)
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}

// Package monitoring turns a running integration into a small web
// server, so the progress, the resource usage and the live state of the
// registered solvers can be inspected from a browser.
package monitoring

import (
	"bytes"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"sync"
	"time"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
	"github.com/sugawarayuuta/sonnet"
	"github.com/syifan/goseth"

	"github.com/qmclab/dcago/id"
)

// Monitor exposes one run over HTTP. Entities registered by name can be
// inspected through a depth-limited state snapshot, and every solver
// publishes its measurement progress through progress bars.
type Monitor struct {
	runName    string
	startTime  time.Time
	portNumber int
	actualPort int

	entitiesLock sync.Mutex
	entities     map[string]any

	progressBarsLock sync.Mutex
	progressBars     []*ProgressBar
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{
		startTime: time.Now(),
		entities:  make(map[string]any),
	}
}

// WithPortNumber sets the port number of the monitoring server.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterRun names the run the monitor reports about.
func (m *Monitor) RegisterRun(name string) {
	m.runName = name
	m.startTime = time.Now()
}

// RegisterEntity makes an entity inspectable under /api/state/{name}.
// Registering another entity under the same name replaces the earlier
// one.
func (m *Monitor) RegisterEntity(name string, entity any) {
	m.entitiesLock.Lock()
	defer m.entitiesLock.Unlock()

	m.entities[name] = entity
}

// CreateProgressBar creates a new progress bar.
func (m *Monitor) CreateProgressBar(name string, total uint64) *ProgressBar {
	bar := &ProgressBar{
		ID:        id.Generate(),
		Name:      name,
		StartTime: time.Now(),
		Total:     total,
	}

	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	m.progressBars = append(m.progressBars, bar)

	return bar
}

// CompleteProgressBar removes a bar from the webpage.
func (m *Monitor) CompleteProgressBar(pb *ProgressBar) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	newBars := make([]*ProgressBar, 0, len(m.progressBars))
	for _, b := range m.progressBars {
		if b != pb {
			newBars = append(newBars, b)
		}
	}

	m.progressBars = newBars
}

func (m *Monitor) router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/run", m.runInfo)
	r.HandleFunc("/api/progress", m.listProgressBars)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/state/{name}", m.entityState)
	r.HandleFunc("/api/profile", m.collectProfile)
	r.HandleFunc("/", m.index)

	return r
}

// StartServer starts the monitor as a web server, on the configured
// port or a random free one.
func (m *Monitor) StartServer() {
	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	m.actualPort = listener.Addr().(*net.TCPAddr).Port

	fmt.Fprintf(os.Stderr,
		"Monitoring run with %s\n", m.URL())

	go func() {
		err := http.Serve(listener, m.router())
		dieOnErr(err)
	}()
}

// URL returns the address of the started server.
func (m *Monitor) URL() string {
	return fmt.Sprintf("http://localhost:%d", m.actualPort)
}

// OpenInBrowser opens the monitoring page in the system browser. The
// server must have been started.
func (m *Monitor) OpenInBrowser() error {
	return browser.OpenURL(m.URL())
}

type indexRsp struct {
	Run       string   `json:"run"`
	Endpoints []string `json:"endpoints"`
}

func (m *Monitor) index(w http.ResponseWriter, _ *http.Request) {
	rsp := indexRsp{
		Run: m.runName,
		Endpoints: []string{
			"/api/run",
			"/api/progress",
			"/api/resource",
			"/api/state/{name}",
			"/api/profile",
		},
	}

	m.respondJSON(w, rsp)
}

type runRsp struct {
	Name          string  `json:"name"`
	StartTime     string  `json:"start_time"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

func (m *Monitor) runInfo(w http.ResponseWriter, _ *http.Request) {
	rsp := runRsp{
		Name:          m.runName,
		StartTime:     m.startTime.Format(time.RFC3339),
		UptimeSeconds: time.Since(m.startTime).Seconds(),
	}

	m.respondJSON(w, rsp)
}

func (m *Monitor) listProgressBars(w http.ResponseWriter, _ *http.Request) {
	m.progressBarsLock.Lock()
	bytes, err := sonnet.Marshal(m.progressBars)
	m.progressBarsLock.Unlock()
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	process, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := process.CPUPercent()
	dieOnErr(err)

	memorySize, err := process.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	}

	m.respondJSON(w, rsp)
}

func (m *Monitor) entityState(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	entity := m.findEntityOr404(w, name)
	if entity == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(entity)
	serializer.SetMaxDepth(1)
	err := serializer.Serialize(w)

	dieOnErr(err)
}

func (m *Monitor) findEntityOr404(w http.ResponseWriter, name string) any {
	m.entitiesLock.Lock()
	entity := m.entities[name]
	m.entitiesLock.Unlock()

	if entity == nil {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("Entity not found"))
		dieOnErr(err)
	}

	return entity
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	if err := pprof.StartCPUProfile(buf); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprintf(w, "profiling unavailable: %v", err)
		return
	}

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	m.respondJSON(w, prof)
}

func (m *Monitor) respondJSON(w http.ResponseWriter, v any) {
	bytes, err := sonnet.Marshal(v)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}

package filechart

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/ukaji3/filechart-go/pkg/filechart/chart"
	"github.com/ukaji3/filechart-go/pkg/filechart/models"
	"github.com/ukaji3/filechart-go/pkg/filechart/parser"
)

// State is the session lifecycle state.
type State int

const (
	// StateEmpty has no dataset.
	StateEmpty State = iota
	// StateLoaded has a dataset but the roles do not satisfy the chart type.
	StateLoaded
	// StateConfigured has roles that satisfy the chart type.
	StateConfigured
	// StateRendered has produced chart data for the current roles.
	StateRendered
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoaded:
		return "loaded"
	case StateConfigured:
		return "configured"
	case StateRendered:
		return "rendered"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// chartCacheSize bounds the memoized chart data per session.
const chartCacheSize = 64

// Renderer draws chart data.
type Renderer interface {
	Render(w io.Writer, data *models.ChartData) error
}

// Session owns the dataset, role assignment and chart data of one chart view.
// It is safe for concurrent use.
type Session struct {
	mu sync.Mutex

	opts     Options
	logger   *zap.Logger
	mapper   *chart.Mapper
	selector *chart.Selector
	dataset  *models.Dataset
	state    State

	// generation increments on every upload start. committed is the
	// generation of the installed dataset; an older upload may not replace it.
	generation uint64
	committed  uint64
	cache      *lru.Cache[string, *models.ChartData]
}

// NewSession creates an empty session showing a bar chart.
// A nil logger disables logging.
func NewSession(opts Options, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cache, err := lru.New[string, *models.ChartData](chartCacheSize)
	if err != nil {
		return nil, err
	}
	return &Session{
		opts:     opts,
		logger:   logger,
		mapper:   chart.NewMapper(opts.Colors(), opts.MapOptions()),
		selector: chart.NewSelector(nil, models.ChartBar, opts.Policy()),
		cache:    cache,
	}, nil
}

// Upload parses and normalizes a file as one unit and replaces the dataset.
//
// An unsupported extension or a parse failure leaves the session unchanged.
// When uploads overlap, the last successful one started wins; an earlier
// upload finishing after it returns ErrSuperseded.
func (s *Session) Upload(ctx context.Context, name string, data []byte) (*models.Dataset, error) {
	name = filepath.Base(name)
	if _, ok := parser.DetectFormat(name); !ok {
		s.logger.Warn("unsupported file type", zap.String("file", name))
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}

	gen := s.begin()

	ds, err := LoadBytes(name, data, s.options())
	if err != nil {
		s.logger.Error("failed to parse file", zap.String("file", name), zap.Error(err))
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.commit(gen, ds); err != nil {
		s.logger.Debug("discarding upload", zap.String("file", name), zap.Error(err))
		return nil, err
	}
	s.logger.Info("loaded dataset",
		zap.String("file", name),
		zap.String("format", string(ds.Format)),
		zap.Int("rows", ds.Len()),
		zap.Bool("truncated", ds.Truncated),
	)
	return ds, nil
}

// UploadFile reads path and uploads its contents.
func (s *Session) UploadFile(ctx context.Context, path string) (*models.Dataset, error) {
	if _, ok := parser.DetectFormat(path); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return s.Upload(ctx, path, data)
}

func (s *Session) options() Options {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts
}

// begin starts an upload and returns its generation.
func (s *Session) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	return s.generation
}

// commit installs ds unless a newer upload has already been installed.
// Uploads that fail never commit, so they supersede nothing.
func (s *Session) commit(gen uint64, ds *models.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen < s.committed {
		return ErrSuperseded
	}
	s.committed = gen
	s.dataset = ds
	s.selector.Reset(ds.Columns)
	s.cache.Purge()
	s.state = StateLoaded
	return nil
}

// SetChartType switches the chart type and clears every role.
func (s *Session) SetChartType(t models.ChartType) (models.RoleAssignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	roles, err := s.selector.SetChartType(t)
	if err != nil {
		return roles, err
	}
	s.cache.Purge()
	s.updateState()
	return roles, nil
}

// Select assigns column to role. See chart.Selector.Select.
func (s *Session) Select(role models.Role, column string) models.RoleAssignment {
	s.mu.Lock()
	defer s.mu.Unlock()

	roles := s.selector.Select(role, column)
	s.updateState()
	return roles
}

// SetY replaces the y columns. See chart.Selector.SetY.
func (s *Session) SetY(columns ...string) models.RoleAssignment {
	s.mu.Lock()
	defer s.mu.Unlock()

	roles := s.selector.SetY(columns...)
	s.updateState()
	return roles
}

// Quick assigns the first column to x (or to the slice label when x is
// disabled) and the remaining columns to y, as far as the chart type allows.
func (s *Session) Quick() models.RoleAssignment {
	s.mu.Lock()
	defer s.mu.Unlock()

	quick := chart.QuickRoles(s.dataset)
	if s.selector.Enabled(models.RoleX) {
		s.selector.Select(models.RoleX, quick.X)
	} else {
		s.selector.Select(models.RoleLabel, quick.X)
	}
	roles := s.selector.SetY(quick.Y...)
	s.updateState()
	return roles
}

// updateState derives the state after a role or chart type edit.
// A rendered session stays rendered while its roles remain ready.
func (s *Session) updateState() {
	switch {
	case s.dataset == nil:
		s.state = StateEmpty
	case !s.mapper.Ready(s.selector.ChartType(), s.selector.Roles()):
		s.state = StateLoaded
	case s.state != StateRendered:
		s.state = StateConfigured
	}
}

// ChartData maps the dataset for the current chart type and roles.
// It returns nil data and a nil error while the roles are not ready.
func (s *Session) ChartData() (*models.ChartData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chartData()
}

func (s *Session) chartData() (*models.ChartData, error) {
	if s.dataset == nil {
		return nil, chart.ErrNoDataset
	}

	t := s.selector.ChartType()
	roles := s.selector.Roles()
	key := cacheKey(t, roles)
	if data, ok := s.cache.Get(key); ok {
		s.state = StateRendered
		return data, nil
	}

	data, err := s.mapper.Map(s.dataset, t, roles)
	if err != nil || data == nil {
		return nil, err
	}
	s.cache.Add(key, data)
	s.state = StateRendered
	s.logger.Debug("mapped chart data",
		zap.String("chart", string(t)),
		zap.Int("series", len(data.Series)),
	)
	return data, nil
}

// Render maps the current roles and draws them with r.
func (s *Session) Render(w io.Writer, r Renderer) error {
	data, err := s.ChartData()
	if err != nil {
		return err
	}
	if data == nil {
		return ErrNotReady
	}
	return r.Render(w, data)
}

// State returns the lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dataset returns the current dataset, or nil.
func (s *Session) Dataset() *models.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dataset
}

// ChartType returns the current chart type.
func (s *Session) ChartType() models.ChartType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selector.ChartType()
}

// Roles returns the current role assignment.
func (s *Session) Roles() models.RoleAssignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selector.Roles()
}

// Enabled reports whether role can be assigned for the current chart type.
func (s *Session) Enabled(role models.Role) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selector.Enabled(role)
}

func cacheKey(t models.ChartType, roles models.RoleAssignment) string {
	return strings.Join([]string{string(t), roles.X, roles.Label, strings.Join(roles.Y, "\x1f")}, "\x1e")
}

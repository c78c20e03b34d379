// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/url"
	"path"
	"strings"
	"sync"

	"painel/config"
	deliverycontext "painel/internal/delivery/context"
	"painel/internal/domain/entity"
	domainerrors "painel/internal/domain/errors"
	"painel/internal/domain/repository"
	"painel/internal/usecase"

	"github.com/pkg/errors"
)

// tenantService implements the TenantUsecase interface.
type tenantService struct {
	store  repository.StateStore
	logger *slog.Logger

	strategy      entity.TenantStrategy
	defaultTenant entity.TenantID
	baseDomain    string
	queryParam    string
	pathPrefix    string
	// reserved holds route segments that never name a tenant under the path strategy.
	reserved map[string]struct{}

	mu       sync.RWMutex
	location *url.URL
}

// NewTenantService is the constructor for tenantService.
func NewTenantService(cfg *config.Config, store repository.StateStore, logger *slog.Logger) (usecase.TenantUsecase, error) {
	tc := cfg.Tenant
	if tc == nil {
		tc = &config.TenantConfig{}
	}

	strategy := entity.TenantStrategy(tc.Strategy)
	if strategy == "" {
		strategy = entity.StrategyQuery
	}
	if !strategy.IsValid() {
		return nil, errors.Errorf("unknown tenant strategy %q", tc.Strategy)
	}

	var defaultTenant entity.TenantID
	if tc.Default != "" {
		id, ok := entity.ParseTenantID(tc.Default)
		if !ok {
			return nil, errors.Errorf("invalid default tenant %q", tc.Default)
		}
		defaultTenant = id
	}

	queryParam := tc.QueryParam
	if queryParam == "" {
		queryParam = "tenant"
	}

	srv := &tenantService{
		store:         store,
		logger:        logger,
		strategy:      strategy,
		defaultTenant: defaultTenant,
		baseDomain:    strings.ToLower(strings.Trim(tc.BaseDomain, ".")),
		queryParam:    queryParam,
		pathPrefix:    "/" + strings.Trim(tc.PathPrefix, "/"),
	}

	if tc.DashboardURL != "" {
		u, err := url.Parse(tc.DashboardURL)
		if err != nil {
			return nil, errors.Wrapf(err, "parse dashboard url %q", tc.DashboardURL)
		}
		srv.location = u
	}
	srv.reserved = reservedSegments(cfg, srv.location, srv.pathPrefix)

	return srv, nil
}

// reservedSegments collects the first segments of the login and dashboard routes and, without
// a path prefix, of the dashboard's own base path.
func reservedSegments(cfg *config.Config, location *url.URL, pathPrefix string) map[string]struct{} {
	routes := []string{"/login", "/dashboard"}
	if nc := cfg.Navigation; nc != nil {
		if nc.LoginPath != "" {
			routes[0] = nc.LoginPath
		}
		if nc.DashboardPath != "" {
			routes[1] = nc.DashboardPath
		}
	}
	if location != nil && pathPrefix == "/" {
		routes = append(routes, location.Path)
	}

	reserved := make(map[string]struct{}, len(routes))
	for _, route := range routes {
		segment, _, _ := strings.Cut(strings.Trim(route, "/"), "/")
		if segment != "" {
			reserved[strings.ToLower(segment)] = struct{}{}
		}
	}

	return reserved
}

func (srv *tenantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SetTenant validates id and overwrites the persisted selection.
func (srv *tenantService) SetTenant(ctx context.Context, id entity.TenantID) error {
	parsed, ok := entity.ParseTenantID(id.String())
	if !ok {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("identificador de município inválido: " + id.String()))
	}

	current, ok, err := srv.store.Get(ctx, repository.KeySelectedTenant)
	if err != nil {
		return errors.Wrap(err, "failed to read selected tenant")
	}
	if ok && current == parsed.String() {
		return nil
	}

	if err := srv.store.Set(ctx, repository.KeySelectedTenant, parsed.String()); err != nil {
		return errors.Wrap(err, "failed to persist selected tenant")
	}
	srv.log(ctx).Info("Tenant selected", slog.String("tenant", parsed.String()))

	return nil
}

// CurrentTenant returns the selected tenant, never the default.
func (srv *tenantService) CurrentTenant(ctx context.Context) (entity.TenantID, error) {
	res, err := srv.Resolve(ctx)
	if err != nil {
		return "", err
	}
	if !res.Selected {
		return "", nil
	}

	return res.ID, nil
}

// Resolve runs persisted selection, then location hint, then default.
func (srv *tenantService) Resolve(ctx context.Context) (entity.TenantResolution, error) {
	raw, ok, err := srv.store.Get(ctx, repository.KeySelectedTenant)
	if err != nil {
		return entity.TenantResolution{Source: entity.TenantSourceNone}, errors.Wrap(err, "failed to read selected tenant")
	}
	if ok {
		if id, valid := entity.ParseTenantID(raw); valid {
			return entity.TenantResolution{ID: id, Source: entity.TenantSourcePersisted, Selected: true}, nil
		}
		srv.log(ctx).Warn("Ignoring invalid persisted tenant", slog.String("value", raw))
	}

	if id, found := srv.hint(srv.Location()); found {
		return entity.TenantResolution{ID: id, Source: entity.TenantSourceHint, Selected: true}, nil
	}

	if !srv.defaultTenant.IsZero() {
		return entity.TenantResolution{ID: srv.defaultTenant, Source: entity.TenantSourceDefault}, nil
	}

	return entity.TenantResolution{Source: entity.TenantSourceNone}, nil
}

// ClearTenant removes the persisted selection.
func (srv *tenantService) ClearTenant(ctx context.Context) error {
	if err := srv.store.Delete(ctx, repository.KeySelectedTenant); err != nil {
		return errors.Wrap(err, "failed to clear selected tenant")
	}
	srv.log(ctx).Info("Tenant selection cleared")

	return nil
}

// SetLocation sets the location hints are derived from.
func (srv *tenantService) SetLocation(u *url.URL) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if u == nil {
		srv.location = nil

		return
	}
	clone := *u
	srv.location = &clone
}

// Location returns a copy of the current location.
func (srv *tenantService) Location() *url.URL {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if srv.location == nil {
		return nil
	}
	clone := *srv.location

	return &clone
}

func (srv *tenantService) hint(u *url.URL) (entity.TenantID, bool) {
	if u == nil {
		return "", false
	}

	var raw string
	switch srv.strategy {
	case entity.StrategySubdomain:
		raw = srv.subdomainLabel(u.Hostname())
	case entity.StrategyQuery:
		raw = u.Query().Get(srv.queryParam)
	case entity.StrategyPath:
		raw = srv.pathSegment(u.Path)
	}

	if raw == "" {
		return "", false
	}

	return entity.ParseTenantID(raw)
}

// subdomainLabel returns the leftmost label of a host strictly below the base domain.
// "www" never names a tenant.
func (srv *tenantService) subdomainLabel(host string) string {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if host == "" || net.ParseIP(host) != nil {
		return ""
	}

	var rest string
	if srv.baseDomain != "" {
		suffix := "." + srv.baseDomain
		if !strings.HasSuffix(host, suffix) {
			return ""
		}
		rest = strings.TrimSuffix(host, suffix)
	} else {
		labels := strings.Split(host, ".")
		if len(labels) < 3 {
			return ""
		}
		rest = labels[0]
	}

	label, _, _ := strings.Cut(rest, ".")
	if label == "www" {
		return ""
	}

	return label
}

func (srv *tenantService) pathSegment(p string) string {
	p = path.Clean("/" + p)
	if srv.pathPrefix != "/" {
		if p != srv.pathPrefix && !strings.HasPrefix(p, srv.pathPrefix+"/") {
			return ""
		}
		p = strings.TrimPrefix(p, srv.pathPrefix)
	}

	segment, _, _ := strings.Cut(strings.TrimPrefix(p, "/"), "/")
	if _, ok := srv.reserved[strings.ToLower(segment)]; ok {
		return ""
	}

	return segment
}

// BuildURL embeds the tenant into a dashboard URL for target, according to the strategy.
func (srv *tenantService) BuildURL(ctx context.Context, target string, override entity.TenantID) (string, error) {
	base := srv.Location()
	if base == nil {
		return "", errors.New("no dashboard location configured")
	}

	ref, err := url.Parse(target)
	if err != nil {
		return "", errors.Wrapf(err, "parse path %q", target)
	}
	if ref.IsAbs() || ref.Host != "" {
		return "", errors.Errorf("path %q must be relative", target)
	}

	tenant := override
	if tenant.IsZero() {
		tenant, err = srv.CurrentTenant(ctx)
		if err != nil {
			return "", err
		}
	} else if parsed, ok := entity.ParseTenantID(override.String()); ok {
		tenant = parsed
	} else {
		return "", errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("identificador de município inválido: " + override.String()))
	}

	out := &url.URL{
		Scheme:   base.Scheme,
		User:     base.User,
		Host:     base.Host,
		Path:     "/" + strings.TrimPrefix(ref.Path, "/"),
		Fragment: ref.Fragment,
	}
	query := ref.Query()

	switch srv.strategy {
	case entity.StrategySubdomain:
		if !tenant.IsZero() && srv.baseDomain != "" {
			host := tenant.String() + "." + srv.baseDomain
			if port := base.Port(); port != "" {
				host = net.JoinHostPort(host, port)
			}
			out.Host = host
		}
	case entity.StrategyQuery:
		if !tenant.IsZero() {
			query.Set(srv.queryParam, tenant.String())
		}
	case entity.StrategyPath:
		prefix := strings.TrimSuffix(srv.pathPrefix, "/")
		if !tenant.IsZero() {
			prefix += "/" + tenant.String()
		}
		out.Path = prefix + out.Path
	}
	out.RawQuery = query.Encode()

	return out.String(), nil
}

// RememberTenant pushes summary to the front of the recent list, without duplicates.
func (srv *tenantService) RememberTenant(ctx context.Context, summary *entity.TenantSummary) error {
	if summary == nil || summary.Subdomain.IsZero() {
		return nil
	}

	recent, err := srv.RecentTenants(ctx)
	if err != nil {
		return err
	}

	next := make([]*entity.TenantSummary, 0, usecase.MaxRecentTenants)
	next = append(next, summary)
	for _, t := range recent {
		if len(next) == usecase.MaxRecentTenants {
			break
		}
		if t.Subdomain != summary.Subdomain {
			next = append(next, t)
		}
	}

	data, err := json.Marshal(next)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := srv.store.Set(ctx, repository.KeyRecentTenants, string(data)); err != nil {
		return errors.Wrap(err, "failed to persist recent tenants")
	}

	return nil
}

// RecentTenants returns the recent list. A corrupt list reads as empty.
func (srv *tenantService) RecentTenants(ctx context.Context) ([]*entity.TenantSummary, error) {
	raw, ok, err := srv.store.Get(ctx, repository.KeyRecentTenants)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read recent tenants")
	}
	if !ok || raw == "" {
		return []*entity.TenantSummary{}, nil
	}

	var recent []*entity.TenantSummary
	if err := json.Unmarshal([]byte(raw), &recent); err != nil {
		srv.log(ctx).Warn("Discarding corrupt recent tenant list", slog.Any("error", err))

		return []*entity.TenantSummary{}, nil
	}
	if len(recent) > usecase.MaxRecentTenants {
		recent = recent[:usecase.MaxRecentTenants]
	}

	return recent, nil
}

// ForgetRecentTenants clears the recent list.
func (srv *tenantService) ForgetRecentTenants(ctx context.Context) error {
	return errors.Wrap(srv.store.Delete(ctx, repository.KeyRecentTenants), "failed to clear recent tenants")
}

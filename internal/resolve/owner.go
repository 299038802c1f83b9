package resolve

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/support-portal/internal/hubspot"
)

// Unassigned is shown when a ticket has no owner or the owner record carries
// no usable identity.
const Unassigned = "Sin asignar"

// OwnerResolver turns an owner id into a display name. Resolution never
// fails: every path degrades to some displayable string.
type OwnerResolver interface {
	DisplayName(ctx context.Context, ownerID string) string
}

// OwnerCache caches resolved display names between requests. Implementations
// must tolerate being nil-valued dependencies.
type OwnerCache interface {
	Get(ctx context.Context, ownerID string) (string, bool)
	Set(ctx context.Context, ownerID, name string)
}

// StaticResolver resolves owners from a hand-maintained id→name table. Used
// by deployments whose credential lacks the owners read scope. Ids missing
// from the table resolve to a display form of the raw id rather than being
// hidden, so gaps in the table are visible.
type StaticResolver struct {
	table map[string]string
}

// NewStaticResolver builds a resolver over the configured directory.
func NewStaticResolver(table map[string]string) *StaticResolver {
	if table == nil {
		table = map[string]string{}
	}
	return &StaticResolver{table: table}
}

// DisplayName implements OwnerResolver.
func (r *StaticResolver) DisplayName(_ context.Context, ownerID string) string {
	if name, ok := r.table[ownerID]; ok && name != "" {
		return name
	}
	return "Agente " + ownerID
}

// LiveResolver resolves owners against the CRM directory, preferring
// "First Last", then the owner's email. Directory failures degrade to the
// static table instead of erroring; the owner name is enrichment, not the
// point of the status lookup.
type LiveResolver struct {
	client   *hubspot.Client
	cache    OwnerCache
	fallback *StaticResolver
	logger   *zap.Logger
}

// NewLiveResolver constructs the resolver.
func NewLiveResolver(client *hubspot.Client, cache OwnerCache, fallback *StaticResolver, logger *zap.Logger) *LiveResolver {
	return &LiveResolver{client: client, cache: cache, fallback: fallback, logger: logger}
}

// DisplayName implements OwnerResolver.
func (r *LiveResolver) DisplayName(ctx context.Context, ownerID string) string {
	if r.cache != nil {
		if name, ok := r.cache.Get(ctx, ownerID); ok {
			return name
		}
	}

	resp, err := r.client.GetOwner(ctx, ownerID)
	if err != nil {
		r.logger.Warn("owner lookup failed", zap.String("owner_id", ownerID), zap.Error(err))
		return r.fallback.DisplayName(ctx, ownerID)
	}
	if !resp.Success() {
		r.logger.Warn("owner lookup rejected",
			zap.String("owner_id", ownerID),
			zap.Int("status", resp.StatusCode))
		return r.fallback.DisplayName(ctx, ownerID)
	}

	owner := resp.OwnerRecord()
	name := strings.TrimSpace(owner.FirstName + " " + owner.LastName)
	if name == "" {
		name = owner.Email
	}
	if name == "" {
		name = Unassigned
	}
	if r.cache != nil {
		r.cache.Set(ctx, ownerID, name)
	}
	return name
}

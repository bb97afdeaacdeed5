package hierarchy

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Match applies the name-matching policy to a candidate set: nodes of the
// given kind whose Name equals name byte-for-byte win; only if no exact
// match exists does a case-insensitive comparison run as a documented
// usability fallback. The two tiers never mix. Zero matches at both tiers
// is a *NotFoundError; two or more at the winning tier is an
// *AmbiguousError carrying every candidate — Match never picks one.
func Match(candidates []Node, kind Kind, name string) (Node, error) {
	var exact, folded []Node
	for _, n := range candidates {
		if n.Kind != kind {
			continue
		}
		if n.Name == name {
			exact = append(exact, n)
			continue
		}
		if strings.EqualFold(n.Name, name) {
			folded = append(folded, n)
		}
	}

	tier := exact
	if len(tier) == 0 {
		tier = folded
	}

	switch len(tier) {
	case 0:
		return Node{}, &NotFoundError{Kind: kind, Name: name}
	case 1:
		return tier[0], nil
	default:
		return Node{}, &AmbiguousError{Kind: kind, Name: name, Candidates: tier}
	}
}

// Resolver resolves names to nodes within a single cached scope.
type Resolver struct {
	cache *Cache
	log   *zap.Logger
}

// NewResolver creates a Resolver over the given cache.
func NewResolver(cache *Cache, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{cache: cache, log: log}
}

// ResolveByName finds the node named name among the scope's children.
// Fetch failures surface as *UpstreamError, never as a not-found result.
func (r *Resolver) ResolveByName(ctx context.Context, scope Scope, name string) (Node, error) {
	tree, err := r.cache.GetScope(ctx, scope)
	if err != nil {
		return Node{}, err
	}

	node, err := Match(tree.Children(scope.ParentID), scope.Child, name)
	if err != nil {
		return Node{}, err
	}

	r.log.Debug("name resolved",
		zap.String("scope", scope.Key()),
		zap.String("name", name),
		zap.String("id", node.ID))
	return node, nil
}

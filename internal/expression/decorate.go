package expression

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc"

	"github.com/mishasvintus/cohort_gateway/internal/domain"
)

// ConceptLookup resolves concept keys in a single batched call.
type ConceptLookup interface {
	GetTreeNodes(ctx context.Context, keys []string) ([]domain.TreeNode, error)
}

// PhenotypeLookup resolves one phenotype key.
type PhenotypeLookup interface {
	GetPhenotype(ctx context.Context, key string) (*domain.Phenotype, error)
}

// Decorate fills list with display records for keys.
//
// Concept keys are resolved with one batched lookup and appended first, in
// their original relative order. Each phenotype key (prefixed "USER:") is
// resolved by its own lookup; phenotype members are appended as lookups
// complete, so their relative order is not deterministic.
//
// Keys that cannot be resolved are kept as placeholders whose display name
// is the key, and a notification is sent for each of them. Only a failure of
// the batched concept lookup is returned, leaving list untouched.
func Decorate(
	ctx context.Context,
	keys []string,
	concepts ConceptLookup,
	phenotypes PhenotypeLookup,
	list *domain.MemberList,
	notify Notifier,
) error {
	if notify == nil {
		notify = LogNotifier{}
	}

	conceptKeys, phenotypeKeys := partition(keys)

	var nodes []domain.TreeNode
	if len(conceptKeys) > 0 {
		var err error
		nodes, err = concepts.GetTreeNodes(ctx, conceptKeys)
		if err != nil {
			return fmt.Errorf("failed to resolve concepts: %w", err)
		}
	}

	byKey := make(map[string]domain.TreeNode, len(nodes))
	for _, n := range nodes {
		if _, ok := byKey[n.Key]; !ok {
			byKey[n.Key] = n
		}
	}

	list.Reset()
	for _, key := range conceptKeys {
		n, ok := byKey[key]
		if !ok {
			list.Append(domain.Member{Key: key, DisplayName: key})
			notify.Notify((&UnresolvedMemberError{Kind: domain.NotificationUnknownConcept, Key: key}).Notification())
			continue
		}
		list.Append(domain.Member{Key: key, DisplayName: n.DisplayName, Type: n.Type})
	}

	var wg conc.WaitGroup
	for _, key := range phenotypeKeys {
		wg.Go(func() {
			p, err := phenotypes.GetPhenotype(ctx, key)
			if err != nil || p == nil {
				list.Append(domain.Member{Key: key, DisplayName: key})
				notify.Notify((&UnresolvedMemberError{Kind: domain.NotificationUnknownPhenotype, Key: key}).Notification())
				return
			}
			m := domain.Member{Key: p.Key, DisplayName: p.DisplayName, Type: p.Type}
			if m.Key == "" {
				m.Key = key
			}
			list.Append(m)
		})
	}
	wg.Wait()

	return nil
}

func partition(keys []string) (concepts, phenotypes []string) {
	for _, key := range keys {
		if domain.IsPhenotypeKey(key) {
			phenotypes = append(phenotypes, key)
		} else {
			concepts = append(concepts, key)
		}
	}
	return concepts, phenotypes
}

package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/levenlabs/go-lflag"
	"github.com/raterudder/solarcalc/pkg/log"
	"github.com/raterudder/solarcalc/pkg/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const configurationsCollection = "configurations"

// FirestoreProvider implements the Database interface using Google Cloud
// Firestore. Each configuration is a document holding the blob in its
// "json" field.
type FirestoreProvider struct {
	client    *firestore.Client
	projectID string
	database  string
}

var _ Database = (*FirestoreProvider)(nil)

// configuredFirestore sets up the Firestore provider.
// It registers flags for configuration.
func configuredFirestore() *FirestoreProvider {
	projectID := lflag.String("firestore-project-id", "", "Google Cloud Project ID for Firestore")
	database := lflag.String("firestore-database", "", "Google Cloud Firestore Database")
	emulator := lflag.String("firestore-emulator", "", "Use Firestore emulator")

	f := &FirestoreProvider{}

	lflag.Do(func() {
		f.projectID = *projectID
		f.database = *database

		// set this because that's how firestore client expects it
		if *emulator != "" {
			os.Setenv("FIRESTORE_EMULATOR_HOST", *emulator)
		}
	})

	return f
}

// Validate checks if the provider is properly configured.
func (f *FirestoreProvider) Validate() error {
	// an empty project ID is detected from the environment
	return nil
}

// Init initializes the Firestore client.
// This must be called before using the provider methods.
func (f *FirestoreProvider) Init(ctx context.Context) error {
	projectID := f.projectID
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}
	database := f.database
	if database == "" {
		database = firestore.DefaultDatabaseID
	}
	client, err := firestore.NewClientWithDatabase(ctx, projectID, database)
	if err != nil {
		return fmt.Errorf("failed to create firestore client (project=%s, database=%s): %w", projectID, database, err)
	}
	f.client = client
	return nil
}

// Close closes the Firestore client connection.
func (f *FirestoreProvider) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

func (f *FirestoreProvider) getDoc(key string) (*firestore.DocumentRef, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	return f.client.Collection(configurationsCollection).Doc(key), nil
}

// GetConfiguration reads the configuration document for key.
func (f *FirestoreProvider) GetConfiguration(ctx context.Context, key string) (*types.SavedConfiguration, error) {
	ref, err := f.getDoc(key)
	if err != nil {
		return nil, err
	}
	doc, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch configuration doc: %w", err)
	}

	val, err := doc.DataAt("json")
	if err != nil {
		log.Ctx(ctx).WarnContext(ctx, "configuration doc missing json", slog.String("key", key))
		return nil, nil
	}
	jsonStr, ok := val.(string)
	if !ok {
		log.Ctx(ctx).WarnContext(ctx, "configuration doc json not string", slog.String("key", key))
		return nil, nil
	}
	return decodeConfiguration(ctx, key, jsonStr), nil
}

// SetConfiguration overwrites the configuration document for key. The blob
// is stored as a JSON string, exactly as it would be in local storage.
func (f *FirestoreProvider) SetConfiguration(ctx context.Context, key string, cfg *types.SavedConfiguration) error {
	blob, err := types.SaveConfiguration(cfg)
	if err != nil {
		return err
	}
	ref, err := f.getDoc(key)
	if err != nil {
		return err
	}
	_, err = ref.Set(ctx, map[string]interface{}{
		"json":    blob,
		"updated": time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	return nil
}

// ListConfigurationKeys returns the IDs of every configuration document.
func (f *FirestoreProvider) ListConfigurationKeys(ctx context.Context) ([]string, error) {
	iter := f.client.Collection(configurationsCollection).DocumentRefs(ctx)

	keys := make([]string, 0)
	for {
		ref, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating configurations: %w", err)
		}
		keys = append(keys, ref.ID)
	}
	sort.Strings(keys)
	return keys, nil
}

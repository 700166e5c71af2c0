// Package config resolves the application's configuration.
//
// Resolution order, highest priority first:
//
//  1. process environment variables
//  2. a local .env file
//  3. config/app.json
//  4. literal defaults
//
// Everything external to the process (Mongo, S3, Redis, Mercado Pago,
// the storefront web config) is driven from here. Startup fails hard
// only on the keys a data route cannot live without (MONGO_URI); the
// rest degrade per route (503 for payments, 500 for client config).
package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

const (
	defaultAppPort    = "8080"
	defaultAppEnv     = "local"
	defaultMongoDB    = "turboost"
	defaultBucket     = "turboost-site-oficial"
	defaultPublicDir  = "public"
	defaultCookieName = "turboost_session"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

func defaultValues() map[string]string {
	return map[string]string{
		"APP_PORT":       defaultAppPort,
		"APP_ENV":        defaultAppEnv,
		"PUBLIC_DIR":     defaultPublicDir,
		"MONGO_URI":      "",
		"MONGO_DB":       defaultMongoDB,
		"REDIS_ADDR":     "",
		"REDIS_PASSWORD": "",
		"STORAGE_DISK":   "local",
		"S3_BUCKET":      defaultBucket,
	}
}

// Load reads config/app.json and .env once. Missing files are fine;
// malformed ones are not.
func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

func AppPort() string   { _ = Load(); return get("APP_PORT", defaultAppPort) }
func AppEnv() string    { _ = Load(); return get("APP_ENV", defaultAppEnv) }
func PublicDir() string { _ = Load(); return get("PUBLIC_DIR", defaultPublicDir) }

// ── Document store ───────────────────────────────────────────────────────────

func MongoURI() string { _ = Load(); return get("MONGO_URI", "") }
func MongoDB() string  { _ = Load(); return get("MONGO_DB", defaultMongoDB) }

// ── Session / cache ──────────────────────────────────────────────────────────

func RedisAddr() string     { _ = Load(); return get("REDIS_ADDR", "") }
func RedisPassword() string { _ = Load(); return get("REDIS_PASSWORD", "") }
func SessionCookie() string { _ = Load(); return get("SESSION_COOKIE", defaultCookieName) }

// ── Object store ─────────────────────────────────────────────────────────────

func StorageDisk() string     { _ = Load(); return get("STORAGE_DISK", "local") }
func StorageS3Bucket() string { _ = Load(); return get("S3_BUCKET", defaultBucket) }
func StorageS3Region() string { _ = Load(); return get("S3_REGION", "us-east-1") }
func StorageS3Key() string    { _ = Load(); return get("S3_KEY", "") }
func StorageS3Secret() string { _ = Load(); return get("S3_SECRET", "") }

// StorageS3Endpoint is only set for S3-compatible stores (MinIO, R2, Spaces).
func StorageS3Endpoint() string { _ = Load(); return get("S3_ENDPOINT", "") }
func StorageS3URL() string      { _ = Load(); return get("S3_URL", "") }
func StorageLocalRoot() string  { _ = Load(); return get("STORAGE_LOCAL_ROOT", "storage") }
func StorageURL() string        { _ = Load(); return get("STORAGE_URL", "http://localhost:8080/storage") }

// ── Payments ─────────────────────────────────────────────────────────────────

func MercadoPagoToken() string { _ = Load(); return get("MERCADOPAGO_ACCESS_TOKEN", "") }

// ── Storefront web config ────────────────────────────────────────────────────

// WebClientConfig returns the key/value pairs the browser needs to talk to
// the hosted services directly. The second return is false when any
// required key is missing.
func WebClientConfig() (map[string]string, bool) {
	_ = Load()

	cfg := map[string]string{
		"apiKey":            get("FIREBASE_API_KEY", ""),
		"authDomain":        get("FIREBASE_AUTH_DOMAIN", ""),
		"projectId":         get("FIREBASE_PROJECT_ID", ""),
		"storageBucket":     get("FIREBASE_STORAGE_BUCKET", ""),
		"messagingSenderId": get("FIREBASE_MESSAGING_SENDER_ID", ""),
		"appId":             get("FIREBASE_APP_ID", ""),
	}
	for _, v := range cfg {
		if v == "" {
			return nil, false
		}
	}
	return cfg, true
}

// Get reads any config key by name with an optional fallback.
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}

// Set overrides a key in the loaded config. Intended for tests.
func Set(key, value string) {
	_ = Load()
	mu.Lock()
	values[strings.ToUpper(key)] = value
	mu.Unlock()
}

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}
		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

// get prefers a real environment variable over the merged file values.
func get(key, fallback string) string {
	if env := strings.TrimSpace(os.Getenv(key)); env != "" {
		return env
	}

	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}
	return fallback
}

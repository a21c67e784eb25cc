// internal/infra/config/config.go
package config

import "os"

// Config はアプリケーション全体の環境変数設定を保持します。
type Config struct {
	Port                     string
	FirestoreProjectID       string
	FirestoreCredentialsFile string
	GCPCreds                 string

	// Firebase Auth 用のプロジェクトID
	FirebaseProjectID string

	// Firestore コレクション名（未指定ならアプリ既定値）
	ProductsCollection string
	UsersCollection    string
	FavoritesSubcol    string

	// GCS モデルアセット用設定
	ModelsBucket string
	ModelsPrefix string
}

// Load は環境変数を読み込み Config を返します。
func Load() *Config {
	// ベースとなる GCP プロジェクト ID
	defaultProject := getenvDefault("GCP_PROJECT_ID", os.Getenv("GOOGLE_CLOUD_PROJECT"))

	cfg := &Config{
		Port:                     getenvDefault("PORT", "8080"),
		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		GCPCreds:                 os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),

		// FIREBASE_PROJECT_ID が未指定なら GCP のデフォルトを使う
		FirebaseProjectID: getenvDefault("FIREBASE_PROJECT_ID", defaultProject),

		ProductsCollection: getenvDefault("PRODUCTS_COLLECTION", "productosRA"),
		UsersCollection:    getenvDefault("USERS_COLLECTION", "usuarios"),
		FavoritesSubcol:    getenvDefault("FAVORITES_SUBCOLLECTION", "favoritos"),

		// 環境変数が未設定なら空文字のまま → モデル解決 API は無効になる
		ModelsBucket: os.Getenv("MODELS_BUCKET"),
		ModelsPrefix: getenvDefault("MODELS_PREFIX", "modelos"),
	}

	return cfg
}

// GetFirestoreProjectID は Firestore/GCP プロジェクト ID を返します。
func (c *Config) GetFirestoreProjectID() string {
	return c.FirestoreProjectID
}

// Firebase 用の ProjectID を返すヘルパー
func (c *Config) GetFirebaseProjectID() string {
	return c.FirebaseProjectID
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

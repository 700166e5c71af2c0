package models

// SettingsDocID is the fixed key of the singleton store configuration
// document in the settings collection.
const SettingsDocID = "storeConfig"

// StoreConfig is an open key/value document: branding text plus the
// optional logo/favicon URLs. Saves merge into the existing document,
// they never replace it.
type StoreConfig map[string]interface{}

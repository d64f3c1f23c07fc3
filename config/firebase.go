package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// FirebaseConfig holds the web client credentials of a Firebase project.
// Copy the example values and replace them with the ones from the Firebase
// console before deploying.
type FirebaseConfig struct {
	APIKey            string `json:"apiKey" mapstructure:"FIREBASE_API_KEY"`
	AuthDomain        string `json:"authDomain" mapstructure:"FIREBASE_AUTH_DOMAIN"`
	ProjectID         string `json:"projectId" mapstructure:"FIREBASE_PROJECT_ID"`
	StorageBucket     string `json:"storageBucket" mapstructure:"FIREBASE_STORAGE_BUCKET"`
	MessagingSenderID string `json:"messagingSenderId" mapstructure:"FIREBASE_MESSAGING_SENDER_ID"`
	AppID             string `json:"appId" mapstructure:"FIREBASE_APP_ID"`
	MeasurementID     string `json:"measurementId" mapstructure:"FIREBASE_MEASUREMENT_ID"`
}

// Field is a single key/value pair of the web config, keyed as the JS SDK expects.
type Field struct {
	Key   string
	Value string
}

// ExampleFirebaseConfig returns the placeholder template.
func ExampleFirebaseConfig() FirebaseConfig {
	return FirebaseConfig{
		APIKey:            "YOUR_API_KEY",
		AuthDomain:        "YOUR_PROJECT_ID.firebaseapp.com",
		ProjectID:         "YOUR_PROJECT_ID",
		StorageBucket:     "YOUR_PROJECT_ID.firebasestorage.app",
		MessagingSenderID: "YOUR_MESSAGING_SENDER_ID",
		AppID:             "YOUR_APP_ID",
		MeasurementID:     "YOUR_MEASUREMENT_ID",
	}
}

// Fields lists the config in SDK order.
func (c FirebaseConfig) Fields() []Field {
	return []Field{
		{Key: "apiKey", Value: c.APIKey},
		{Key: "authDomain", Value: c.AuthDomain},
		{Key: "projectId", Value: c.ProjectID},
		{Key: "storageBucket", Value: c.StorageBucket},
		{Key: "messagingSenderId", Value: c.MessagingSenderID},
		{Key: "appId", Value: c.AppID},
		{Key: "measurementId", Value: c.MeasurementID},
	}
}

// setFirebaseDefaults registers the placeholders as viper defaults so every
// key is present even when neither file nor env provides it.
func setFirebaseDefaults(v *viper.Viper) {
	ex := ExampleFirebaseConfig()
	v.SetDefault("FIREBASE_API_KEY", ex.APIKey)
	v.SetDefault("FIREBASE_AUTH_DOMAIN", ex.AuthDomain)
	v.SetDefault("FIREBASE_PROJECT_ID", ex.ProjectID)
	v.SetDefault("FIREBASE_STORAGE_BUCKET", ex.StorageBucket)
	v.SetDefault("FIREBASE_MESSAGING_SENDER_ID", ex.MessagingSenderID)
	v.SetDefault("FIREBASE_APP_ID", ex.AppID)
	v.SetDefault("FIREBASE_MEASUREMENT_ID", ex.MeasurementID)
}

// LoadFirebaseConfig reads the web config out of v. Values are taken as-is.
func LoadFirebaseConfig(v *viper.Viper) (FirebaseConfig, error) {
	setFirebaseDefaults(v)

	var cfg FirebaseConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return FirebaseConfig{}, fmt.Errorf("config: decode firebase config: %w", err)
	}
	return cfg, nil
}

// Package config loads runtime configuration for the SocialNet CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: SOCIALNET_* variables, after loading a dotenv file
//     (-e/-env, or ./.env when present).
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Endpoints left empty after all layers are derived from the server URL.
//
// # JSON schema
//
//	{
//	  "server_url": "https://api.example.org",
//	  "upload_url": "https://upload.example.org",
//	  "database_path": "socialnet.db",
//	  "request_timeout": "15s",
//	  "log_file": "logs/client.log",
//	  "log_level": "debug",
//	  "metrics_addr": "127.0.0.1:9100"
//	}
package config

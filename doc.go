// Package hjarta wires layered configuration into an Fx application.
//
// NewDefaultResolver registers the two standard providers for a schema:
// configuration files from the "config" directory at FilePriority and
// environment variables at EnvPriority, so variables override files. App
// sets up slog logging and, with WithConfig, resolves the configuration once
// at startup and supplies it to the container:
//
//	s, _ := structschema.New[AppConfig]()
//	app := hjarta.NewApp(
//	    hjarta.WithConfig(s, hjarta.WithEnvPrefix("APP_")),
//	    hjarta.WithModules(serverModule),
//	)
package hjarta

/*
Package launch composes the command-line options for the Alertmanager daemon.

Alertmanager releases in the 0.x line use single-dash flags
(-config.file, -storage.path); the composed string is handed to the daemon
installer, which embeds it in the generated service definition. Extra options
pass through verbatim so operators can inject arbitrary daemon flags.

	launch.Options(cfg)
	// -config.file=/etc/alertmanager/alertmanager.yaml -storage.path=/var/lib/alertmanager

# See Also

  - pkg/graph for the install descriptor that carries the options string
*/
package launch

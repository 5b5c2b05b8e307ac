// Package services implements the driving ports: the entropy analyser
// (block scanning, edge detection, chart rendering), the end-to-end
// scan orchestrator and the watch-mode runner.
//
// Services depend on domain types and driven port interfaces only;
// infrastructure is injected by the composition root.
package services

/*
Package config loads and validates the renaming surface from a file.

🎯 Purpose:
- Defines the Config struct shared by the CLI and the planner
- Loads JSON, YAML, TOML, and HCL by extension (.renamerc tries YAML then
  HCL)
- Applies defaults and rejects bad enum values before any planning

🔄 Flow:
1. LoadConfig picks a decoder by extension; unknown fields are errors
2. The CLI layers changed flags over the loaded values
3. Validate fills defaults and checks every enum once, up front

📝 Design Philosophy:
Configuration is a caller contract: anything wrong with it is fatal before
the first file is read. The struct mirrors the flag surface one to one, so
a flag, a YAML key, and an HCL attribute are always the same word.
*/
package config

package main

import "fmt"

type versionCmd struct {
	command
}

func parseVersionCmd(args []string, r *root) (*versionCmd, error) {
	v := &versionCmd{command: newCommand(r, "version")}
	v.fs.Usage = usageFunc(v)
	if err := v.fs.Parse(args); err != nil {
		return nil, err
	}
	if v.fs.NArg() != 0 {
		return nil, &UsageError{of: v}
	}
	return v, nil
}

func (v *versionCmd) Run() error {
	fmt.Fprintf(v.stdout, "spritery %s", version)
	if commit != "" {
		fmt.Fprintf(v.stdout, " (%s", commit)
		if date != "" {
			fmt.Fprintf(v.stdout, ", %s", date)
		}
		fmt.Fprint(v.stdout, ")")
	}
	fmt.Fprintln(v.stdout)
	return nil
}

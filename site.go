package fiber

// Site marks a suspension-site boundary in a fiber body written for the
// cmd/fiberc code generator. It is a real function so annotated source
// type-checks before generation has run; fiberc rewrites each Site call
// away, splicing the statements around it into a case of a switch on the
// receiver's resume field. A body containing Site calls that has not yet
// been run through fiberc will not suspend and resume correctly — see
// cmd/fiberc's package doc for the authoring convention.
func Site() {}

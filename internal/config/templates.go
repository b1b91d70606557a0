package config

import (
	"fmt"
	"os"
)

func Template() string {
	return jobTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(jobTemplate), 0o600)
}

const jobTemplate = `# sersrcgen job
# protocol: u(art); s(pi), i(2c) and c(an) are reserved
protocol = "u"
# <data bits 5-9><parity N|O|E><stop bits 1|2>
format = "8N1"
# lsb or msb first
bit_order = "lsb"
baud = 9600
# idle bits between frames
pause = 0

# exactly one of data or data_file
data = ["0x01", "0x02", "0x03", "0x04", "0x80"]
# data_file = "data.txt"
# data_width = 8
max_data_count = 16

testbench = true
output_dir = "."
mem_file = "serialized_data.mem"
testbench_file = "testbench_boilerplate.v"
overwrite = false
# metrics_file = "sersrcgen.prom"
`

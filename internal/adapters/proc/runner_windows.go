//go:build windows

package proc

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// processCreationTime returns the process creation FILETIME as a single
// token. Zero means the process could not be inspected, typically because
// it already exited.
func processCreationTime(pid int) uint64 {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(pid))
	if err != nil {
		return 0
	}
	defer windows.CloseHandle(h) //nolint:errcheck // best effort close

	var creation, exit, kernel, user windows.Filetime
	if err := windows.GetProcessTimes(h, &creation, &exit, &kernel, &user); err != nil {
		return 0
	}
	return uint64(creation.HighDateTime)<<32 | uint64(creation.LowDateTime)
}

func processAlive(pid int) bool {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(pid))
	if err != nil {
		return false
	}
	defer windows.CloseHandle(h) //nolint:errcheck // best effort close

	var code uint32
	if err := windows.GetExitCodeProcess(h, &code); err != nil {
		return false
	}
	return code == windows.STILL_ACTIVE
}

// snapshotProcesses reads the current process table via a toolhelp snapshot.
func snapshotProcesses() []procInfo {
	snap, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return nil
	}
	defer windows.CloseHandle(snap) //nolint:errcheck // best effort close

	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))
	if err := windows.Process32First(snap, &entry); err != nil {
		return nil
	}

	var infos []procInfo
	for {
		infos = append(infos, procInfo{
			pid:      int(entry.ProcessID),
			ppid:     int(entry.ParentProcessID),
			creation: processCreationTime(int(entry.ProcessID)),
		})
		if err := windows.Process32Next(snap, &entry); err != nil {
			return infos
		}
	}
}

func terminateProcess(pid int) {
	h, err := windows.OpenProcess(windows.PROCESS_TERMINATE, false, uint32(pid))
	if err != nil {
		return
	}
	defer windows.CloseHandle(h) //nolint:errcheck // best effort close
	_ = windows.TerminateProcess(h, 1)
}

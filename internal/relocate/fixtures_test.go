package relocate

import (
	"strings"

	"github.com/tlperl/tlperl-build/internal/lines"
)

const winInstallDir = `C:\texlive\perl`

// configPMFixture is a trimmed Config.pm as generated by a Windows build
// installed to C:\texlive\perl.
var configPMFixture = joinLines(
	`# This file was created by configpm when Perl was built. Any changes`,
	`# made to this file will be lost the next time perl is built.`,
	`# built for C:\\texlive\\perl`,
	``,
	`package Config;`,
	`use strict;`,
	`use warnings;`,
	`our ( %Config, $VERSION );`,
	``,
	`# tie returns the object, so the value returned to require will be true.`,
	`tie %Config, 'Config', {`,
	`    archlibexp => 'C:\\texlive\\perl\\lib',`,
	`    archname => 'MSWin32-x64-multi-thread',`,
	`    cc => 'cl',`,
	`    d_readlink => undef,`,
	`    installprefixexp => 'C:\\texlive\\perl',`,
	`    privlibexp => 'C:\\texlive\\perl\\lib',`,
	`    scriptdir => 'C:\\texlive\\perl\\bin',`,
	`    sitearchexp => 'C:\\texlive\\perl\\site\\lib',`,
	`    so => 'dll',`,
	`    version => '5.40.0',`,
	`};`,
)

var configPMWant = joinLines(
	`# This file was created by configpm when Perl was built. Any changes`,
	`# made to this file will be lost the next time perl is built.`,
	`# built for C:\\texlive\\perl`,
	``,
	`package Config;`,
	`use strict;`,
	`use warnings;`,
	`our ( %Config, $VERSION );`,
	``,
	`my $rootdir = __FILE__;`,
	`$rootdir =~ s![\\/][^\\/]*[\\/][^\\/]*$!!;`,
	`$rootdir =~ s!/!\\!g;`,
	``,
	`# tie returns the object, so the value returned to require will be true.`,
	`tie %Config, 'Config', {`,
	`    archlibexp => "$rootdir\\lib",`,
	`    archname => 'MSWin32-x64-multi-thread',`,
	`    cc => 'cl',`,
	`    d_readlink => undef,`,
	`    installprefixexp => "$rootdir",`,
	`    privlibexp => "$rootdir\\lib",`,
	`    scriptdir => "$rootdir\\bin",`,
	`    sitearchexp => "$rootdir\\site\\lib",`,
	`    so => 'dll',`,
	`    version => '5.40.0',`,
	`};`,
)

// configHeavyFixture is a trimmed Config_heavy.pl for the same build.
var configHeavyFixture = joinLines(
	`# This file was created by configpm when Perl was built. Any changes`,
	`package Config;`,
	`use strict;`,
	`use warnings;`,
	`our %Config;`,
	``,
	`sub myconfig {`,
	`    return $summary_expanded if $summary_expanded;`,
	`}`,
	``,
	`local *_ = \my $a;`,
	`$_ = <<'!END!';`,
	`Author=''`,
	`archlib='C:\texlive\perl\lib'`,
	`cf_email='tex-live@tug.org'`,
	`perlpath='C:\texlive\perl\bin\perl.exe'`,
	`sh='cmd /x /c'`,
	`startperl='#!perl'`,
	`!END!`,
	``,
	`our $Config_SH_expanded = "\n$_" . << 'EOVIRTUAL';`,
	`ccflags_nolargefiles='-nologo -I"C:\texlive\perl\lib\CORE"'`,
	`ldflags_nolargefiles='-nologo -libpath:"C:\texlive\perl\lib\CORE"'`,
	`ldflags_nolargefiles='-second -libpath:"C:\texlive\perl\lib"'`,
	`libs_nolargefiles='oldnames.lib'`,
	`EOVIRTUAL`,
)

var configHeavyWant = joinLines(
	`# This file was created by configpm when Perl was built. Any changes`,
	`package Config;`,
	`use strict;`,
	`use warnings;`,
	`our %Config;`,
	``,
	`sub myconfig {`,
	`    return $summary_expanded if $summary_expanded;`,
	`}`,
	``,
	`my $rootdir = __FILE__;`,
	`$rootdir =~ s![\\/][^\\/]*[\\/][^\\/]*$!!;`,
	`$rootdir =~ s!/!\\!g;`,
	``,
	`local *_ = \my $a;`,
	`$_ = <<"!END!";`,
	`Author=''`,
	`archlib='$rootdir\\lib'`,
	`cf_email='tex-live\@tug.org'`,
	`perlpath='$rootdir\\bin\\perl.exe'`,
	`sh='cmd /x /c'`,
	`startperl='#!perl'`,
	`!END!`,
	``,
	`our $Config_SH_expanded = "\n$_" . << 'EOVIRTUAL';`,
	`ccflags_nolargefiles='-nologo -I"C:\texlive\perl\lib\CORE"'`,
	`ldflags_nolargefiles="-nologo -libpath:\"$rootdir\\lib\\CORE\""`,
	`ldflags_nolargefiles='-second -libpath:"C:\texlive\perl\lib"'`,
	`libs_nolargefiles='oldnames.lib'`,
	`EOVIRTUAL`,
)

func joinLines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}

func split(s string) lines.File {
	return lines.Split([]byte(s))
}

func render(f lines.File) string {
	return string(f.Bytes())
}
